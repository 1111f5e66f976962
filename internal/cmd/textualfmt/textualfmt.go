// Package textualfmt parses textual-fmt command flags and runs one
// localization or formatting operation per invocation.
package textualfmt

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	entrypoint "github.com/textualirc/support/internal/platform/cmd"
	"github.com/textualirc/support/internal/platform/config"
	"github.com/textualirc/support/internal/platform/i18n"
	"github.com/textualirc/support/internal/platform/i18n/catalog"
	"github.com/textualirc/support/internal/platform/timefmt"
	"github.com/textualirc/support/internal/platform/values"
	"github.com/textualirc/support/internal/random"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/text/language"
)

// Config holds textual-fmt command configuration.
type Config struct {
	config.Localization
	UTC  bool `env:"UTC"`
	Args []string
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "Display locale as a BCP 47 tag")
	fs.StringVar(&cfg.TimestampFormat, "timestamp-format", cfg.TimestampFormat, "strftime format for the timestamp command")
	fs.StringVar(&cfg.PluginCatalogDir, "plugin-catalog-dir", cfg.PluginCatalogDir, "Directory holding a plugin bundle's locales/ tree")
	fs.BoolVar(&cfg.UTC, "utc", cfg.UTC, "Render timestamps in UTC instead of local time")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	cfg.Args = fs.Args()
	return cfg, nil
}

// Usage lists the available commands.
const Usage = `usage: textual-fmt [flags] <command> [args]

commands:
  string <key> [args...]      application string
  basic <id> [args...]        basic language string
  bundle <key> [args...]      plugin bundle string (needs -plugin-catalog-dir)
  timestamp [unix-seconds]    strftime timestamp
  iso [unix-seconds]          ISO 8601 timestamp
  interval [-short] [-units s,m,h,d,w,mo,y] <seconds>
  number <n>                  grouped number
  random <max>                random integer in [0, max)
  sort [values...]            values in default order
  equal <a> <b>               whether two values are equal
  locales                     locales the bundle ships
  messages [namespace]        key=value pairs for the matched locale`

var now = time.Now

// Run executes the command named by cfg.Args and writes its result to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceFormat, func(ctx context.Context) error {
		return execute(ctx, cfg, out)
	})
}

type runner struct {
	cfg    Config
	loc    *i18n.Localizer
	plugin *catalog.Bundle
	zone   *time.Location
}

func execute(ctx context.Context, cfg Config, out io.Writer) error {
	if len(cfg.Args) == 0 {
		return errors.New(Usage)
	}
	tag, err := language.Parse(strings.TrimSpace(cfg.Locale))
	if err != nil {
		return fmt.Errorf("parse locale %q: %w", cfg.Locale, err)
	}
	resolved := tag
	if _, ok := i18n.ParseTag(cfg.Locale); !ok {
		resolved = i18n.MatchTags([]language.Tag{tag})
		log.Printf("locale %s is not shipped, application strings use %s", tag, resolved)
	}
	r := runner{cfg: cfg, loc: i18n.NewLocalizer(nil, tag), zone: time.Local}
	if cfg.UTC {
		r.zone = time.UTC
	}
	if dir := strings.TrimSpace(cfg.PluginCatalogDir); dir != "" {
		plugin, err := catalog.LoadFromFS(filepath.Base(dir), os.DirFS(dir))
		if err != nil {
			return fmt.Errorf("load plugin bundle: %w", err)
		}
		r.plugin = plugin
	}

	name, args := cfg.Args[0], cfg.Args[1:]
	_, span := otel.Tracer(entrypoint.ServiceFormat).Start(ctx, entrypoint.ServiceFormat+"."+name)
	span.SetAttributes(
		attribute.String("textual.locale", tag.String()),
		attribute.String("textual.locale.resolved", resolved.String()),
	)
	defer span.End()

	result, err := r.dispatch(name, args)
	if err != nil {
		span.RecordError(err)
		return err
	}
	_, err = fmt.Fprintln(out, result)
	return err
}

func (r runner) dispatch(name string, args []string) (string, error) {
	switch name {
	case "string":
		if len(args) == 0 {
			return "", errors.New("string: key is required")
		}
		return r.loc.String(args[0], formatArgs(args[1:])...), nil
	case "basic":
		if len(args) == 0 {
			return "", errors.New("basic: id is required")
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return "", fmt.Errorf("basic: parse id: %w", err)
		}
		return r.loc.Basic(id, formatArgs(args[1:])...), nil
	case "bundle":
		if len(args) == 0 {
			return "", errors.New("bundle: key is required")
		}
		if r.plugin == nil {
			return "", errors.New("bundle: -plugin-catalog-dir is required")
		}
		return r.loc.FromBundle(args[0], r.plugin, formatArgs(args[1:])...), nil
	case "timestamp":
		t, err := r.instant(args)
		if err != nil {
			return "", err
		}
		return timefmt.FormatTimestamp(t, r.cfg.TimestampFormat), nil
	case "iso":
		t, err := r.instant(args)
		if err != nil {
			return "", err
		}
		return timefmt.SharedISOFormatter().Format(t), nil
	case "interval":
		return r.interval(args)
	case "number":
		if len(args) != 1 {
			return "", errors.New("number: exactly one value is required")
		}
		n, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return "", fmt.Errorf("number: %w", err)
		}
		return r.loc.Number(n), nil
	case "random":
		if len(args) != 1 {
			return "", errors.New("random: max is required")
		}
		max, err := strconv.Atoi(args[0])
		if err != nil {
			return "", fmt.Errorf("random: %w", err)
		}
		return strconv.Itoa(random.RandomNumber(max)), nil
	case "sort":
		items := make([]values.Value, len(args))
		for i, arg := range args {
			items[i] = values.Of(parseArg(arg))
		}
		values.Sort(items, values.DefaultComparator)
		rendered := make([]string, len(items))
		for i, item := range items {
			rendered[i] = renderValue(item)
		}
		return strings.Join(rendered, " "), nil
	case "equal":
		if len(args) != 2 {
			return "", errors.New("equal: two values are required")
		}
		a, b := values.Of(parseArg(args[0])), values.Of(parseArg(args[1]))
		return strconv.FormatBool(values.AreEqual(a, b)), nil
	case "locales":
		return strings.Join(r.bundle().Locales(), " "), nil
	case "messages":
		return r.messages(args)
	default:
		return "", fmt.Errorf("unknown command %q\n%s", name, Usage)
	}
}

// bundle is the plugin bundle when one is loaded, else the application bundle.
func (r runner) bundle() *catalog.Bundle {
	if r.plugin != nil {
		return r.plugin
	}
	return r.loc.Bundle()
}

func (r runner) messages(args []string) (string, error) {
	bundle := r.bundle()
	locale := bundle.MatchLocale(r.loc.Tag())
	var messages map[string]string
	switch len(args) {
	case 0:
		messages = bundle.LocaleMessages(locale)
	case 1:
		if !slices.Contains(bundle.Namespaces(locale), args[0]) {
			return "", fmt.Errorf("messages: namespace %q not in %s", args[0], locale)
		}
		messages = bundle.NamespaceMessages(locale, args[0])
	default:
		return "", errors.New("messages: at most one namespace is allowed")
	}
	lines := make([]string, 0, len(messages))
	for _, key := range slices.Sorted(maps.Keys(messages)) {
		lines = append(lines, key+"="+messages[key])
	}
	return strings.Join(lines, "\n"), nil
}

func (r runner) instant(args []string) (time.Time, error) {
	if len(args) == 0 {
		return now().In(r.zone), nil
	}
	seconds, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse unix seconds: %w", err)
	}
	return time.Unix(seconds, 0).In(r.zone), nil
}

func (r runner) interval(args []string) (string, error) {
	fs := flag.NewFlagSet("interval", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	short := fs.Bool("short", false, "abbreviated units")
	unitList := fs.String("units", "", "comma separated units (s,m,h,d,w,mo,y)")
	if err := fs.Parse(args); err != nil {
		return "", fmt.Errorf("interval: %w", err)
	}
	if fs.NArg() != 1 {
		return "", errors.New("interval: seconds are required")
	}
	seconds, err := strconv.ParseInt(fs.Arg(0), 10, 64)
	if err != nil {
		return "", fmt.Errorf("interval: %w", err)
	}
	units, err := ParseUnits(*unitList)
	if err != nil {
		return "", err
	}
	return timefmt.FormatInterval(r.loc, seconds, *short, units), nil
}

var unitNames = map[string]timefmt.Unit{
	"s":  timefmt.Second,
	"m":  timefmt.Minute,
	"h":  timefmt.Hour,
	"d":  timefmt.Day,
	"w":  timefmt.Week,
	"mo": timefmt.Month,
	"y":  timefmt.Year,
}

// ParseUnits converts a comma separated unit list into a unit mask. An empty
// list enables every unit.
func ParseUnits(list string) (timefmt.Unit, error) {
	var units timefmt.Unit
	for _, part := range strings.Split(list, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		unit, ok := unitNames[part]
		if !ok {
			return 0, fmt.Errorf("unknown unit %q", part)
		}
		units |= unit
	}
	if units == 0 {
		return timefmt.AllUnits, nil
	}
	return units, nil
}

// formatArgs turns command-line words into printf arguments so integer
// verbs receive integers.
func formatArgs(args []string) []any {
	out := make([]any, len(args))
	for i, arg := range args {
		out[i] = parseArg(arg)
	}
	return out
}

func parseArg(arg string) any {
	if n, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(arg, 64); err == nil {
		return f
	}
	return arg
}

func renderValue(v values.Value) string {
	if s, ok := v.Str(); ok {
		return s
	}
	if f, ok := v.Float64(); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return v.Kind().String()
}
