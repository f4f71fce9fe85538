// Convert CLDR data to QLocaleXML.
//
// Unpack a CLDR core.zip and pass the path of its common/main
// sub-directory as the first argument; the QLocaleXML document goes to
// the optional second argument or standard output. Diagnostics about
// skipped files, codes and subtags go to standard error.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cldrtools/qlocalexml"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func usage(errw io.Writer, name, message string) {
	fmt.Fprintf(errw, "Usage: %s <path-to-cldr-main> [out-file.xml]\n", name)
	if message != "" {
		fmt.Fprintf(errw, "\n%s\n", message)
	}
}

func newLogger(errw io.Writer) *zap.SugaredLogger {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = "" // a diagnostic stream, not a timestamped log
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(errw), zapcore.WarnLevel)
	return zap.New(core).Sugar()
}

func run(args []string, out, errw io.Writer) int {
	name := args[0]
	args = args[1:]
	if len(args) < 1 {
		usage(errw, name, "")
		return 1
	}
	cldrDir := args[0]
	args = args[1:]
	if info, err := os.Stat(cldrDir); err != nil || !info.IsDir() {
		usage(errw, name, "Where did you unpack the CLDR data files?")
		return 1
	}
	if 1 < len(args) {
		usage(errw, name, "Too many arguments passed")
		return 1
	}
	qxml := out
	if len(args) == 1 {
		f, err := os.Create(args[0])
		if err != nil {
			fmt.Fprintf(errw, "%v\n", err)
			return 1
		}
		defer f.Close()
		qxml = f
	}

	log := newLogger(errw)
	defer log.Sync()

	src := qlocalexml.NewSource(cldrDir, log)
	if _, err := src.NumberSystems(); err != nil {
		log.Errorf("%v", err)
		return 1
	}

	// TODO: make the calendar list a command-line option
	builder := qlocalexml.NewBuilder(src, qlocalexml.DefaultCalendars)
	db := qlocalexml.Database{}

	// Default-content locales first; their specific siblings processed
	// afterwards overwrite them. See tr35-info.html#Default_Content.
	defaultContent, err := src.DefaultContentLocales()
	if err != nil {
		log.Errorf("%v", err)
		return 1
	}
	var skips []string
	for _, locale := range defaultContent {
		languageCode, scriptCode, countryCode, single, cruft := qlocalexml.SplitLocale(locale)
		if single {
			log.Warnf("skipping defaultContent locale %q [neither two nor three tags]", locale)
			continue
		}
		if cruft != "" {
			log.Warnf("ignoring unparsed cruft %q in %q", cruft, locale)
		}
		if scriptCode == "" && countryCode == "" {
			log.Warnf("skipping defaultContent locale %q [second tag is neither script nor territory]", locale)
			continue
		}
		l, err := builder.Generate(locale, languageCode, scriptCode, countryCode, "")
		if err != nil {
			log.Warnf("skipping defaultContent locale %q (%v)", locale, err)
			continue
		}
		if l == nil {
			skips = append(skips, locale)
			continue
		}
		db[l.Key()] = l
	}
	wrappedWarn(log, "skipping defaultContent locales [no locale info generated]: ", skips)
	skips = nil

	// os.ReadDir sorts by filename, so same-key overwrites between
	// locale files happen in a stable order.
	entries, err := os.ReadDir(cldrDir)
	if err != nil {
		log.Errorf("%v", err)
		return 1
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(entry.Name(), ".xml") {
			skips = append(skips, entry.Name())
			continue
		}
		l, err := builder.GenerateLocaleInfo(strings.TrimSuffix(entry.Name(), ".xml"))
		if err != nil {
			log.Warnf("skipping file %q (%v)", entry.Name(), err)
			continue
		}
		if l == nil {
			skips = append(skips, entry.Name())
			continue
		}
		db[l.Key()] = l
	}
	wrappedWarn(log, "skipping files [no locale info generated]: ", skips)

	if err := builder.IntegrateWeekData(db); err != nil {
		log.Errorf("%v", err)
		return 1
	}

	version, err := cldrVersion(filepath.Join(cldrDir, "..", "dtd", "ldml.dtd"))
	if err != nil {
		log.Errorf("%v", err)
		return 1
	}

	subtags, err := qlocalexml.LikelySubtags(src, builder.Resolver)
	if err != nil {
		log.Errorf("%v", err)
		return 1
	}

	w := qlocalexml.NewWriter(qxml)
	w.Version(version)
	w.EnumData()
	w.LikelySubtags(subtags)
	wrappedWarn(log, "skipping likelySubtags (for unknown language codes): ", subtags.Skipped())
	w.Locales(db, builder.Calendars)
	if err := w.Close(); err != nil {
		log.Errorf("%v", err)
		return 1
	}
	return 0
}

// cldrVersion scrapes the declared schema version from the LDML DTD.
func cldrVersion(dtdPath string) (string, error) {
	f, err := os.Open(dtdPath)
	if err != nil {
		return "", err
	}
	defer f.Close()
	version := "unknown"
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); strings.Contains(line, "version cldrVersion CDATA #FIXED") {
			if parts := strings.Split(line, "\""); 1 < len(parts) {
				version = parts[1]
			}
		}
	}
	return version, scanner.Err()
}

func wrappedWarn(log *zap.SugaredLogger, prefix string, tokens []string) {
	if len(tokens) == 0 {
		return
	}
	log.Warn(wrap(prefix+strings.Join(tokens, ", "), 80, " "))
}

// wrap word-wraps text at width, indenting continuation lines.
func wrap(text string, width int, indent string) string {
	var lines []string
	line := ""
	for _, word := range strings.Fields(text) {
		if line == "" {
			line = word
		} else if width < len(line)+1+len(word) {
			lines = append(lines, line)
			line = indent + word
		} else {
			line += " " + word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
