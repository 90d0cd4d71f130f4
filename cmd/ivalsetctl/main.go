// Command ivalsetctl is a small CLI front end over the ivalset/dispatch
// factory: it parses two interval-set expressions from the command line,
// applies a set operation, and prints the canonical result.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-errors/errors"
	"github.com/integrii/flaggy"
	"github.com/sirupsen/logrus"

	"github.com/gaissmai/ivalset/dispatch"
)

const dateLayout = "2006-01-02"

var (
	domainFlag = "int"
	opFlag     = "union"
	aFlag      = ""
	bFlag      = ""
	probeFlag  = ""
	verbose    = false
)

var log = logrus.New()

func main() {
	flaggy.SetName("ivalsetctl")
	flaggy.SetDescription("compute interval-set algebra from the command line")
	flaggy.DefaultParser.AdditionalHelpPrepend = "https://github.com/gaissmai/ivalset"

	flaggy.String(&domainFlag, "d", "domain", "domain of the values: int, float64, or date")
	flaggy.String(&opFlag, "o", "op", "operation: union, intersect, minus, complement, contains")
	flaggy.String(&aFlag, "a", "set-a", `first interval, e.g. "[1,5)"`)
	flaggy.String(&bFlag, "b", "set-b", `second interval, e.g. "[3,8]", ignored by complement/contains`)
	flaggy.String(&probeFlag, "x", "probe", "value to test membership for, used by contains")
	flaggy.Bool(&verbose, "v", "verbose", "log the parsed sets at debug level")

	flaggy.Parse()

	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := run(); err != nil {
		if stacked, ok := err.(*errors.Error); ok {
			log.Error(stacked.ErrorStack())
		} else {
			log.Error(err.Error())
		}
		os.Exit(1)
	}
}

func run() error {
	kind, err := domainKind(domainFlag)
	if err != nil {
		return errors.Wrap(err, 0)
	}

	setA, err := parseSet(kind, aFlag)
	if err != nil {
		return errors.Wrap(fmt.Errorf("set-a: %w", err), 0)
	}
	log.WithField("set-a", setA).Debug("parsed")

	if opFlag == "contains" {
		x, err := parseValue(kind, probeFlag)
		if err != nil {
			return errors.Wrap(fmt.Errorf("probe: %w", err), 0)
		}
		ok, err := setA.Contains(x)
		if err != nil {
			return errors.Wrap(err, 0)
		}
		fmt.Println(ok)
		return nil
	}

	if opFlag == "complement" {
		fmt.Println(setA.Complement())
		return nil
	}

	setB, err := parseSet(kind, bFlag)
	if err != nil {
		return errors.Wrap(fmt.Errorf("set-b: %w", err), 0)
	}
	log.WithField("set-b", setB).Debug("parsed")

	switch opFlag {
	case "union":
		out, err := setA.Union(setB)
		if err != nil {
			return errors.Wrap(err, 0)
		}
		fmt.Println(out)
	case "intersect":
		out, err := setA.Intersect(setB)
		if err != nil {
			return errors.Wrap(err, 0)
		}
		fmt.Println(out)
	case "minus":
		out, err := setA.Minus(setB)
		if err != nil {
			return errors.Wrap(err, 0)
		}
		fmt.Println(out)
	default:
		return errors.Wrap(fmt.Errorf("unknown op %q", opFlag), 0)
	}
	return nil
}

func domainKind(name string) (dispatch.Kind, error) {
	switch name {
	case "int":
		return dispatch.KindInt, nil
	case "float64":
		return dispatch.KindFloat64, nil
	case "date":
		return dispatch.KindDate, nil
	default:
		return dispatch.KindAuto, fmt.Errorf("unsupported domain %q", name)
	}
}

// parseSet accepts one interval expression; a real deployment would accept
// a comma-separated list, but one interval is enough to exercise the
// factory end to end.
func parseSet(kind dispatch.Kind, expr string) (dispatch.AnySet, error) {
	iv, err := parseInterval(kind, expr)
	if err != nil {
		return nil, err
	}
	return dispatch.NewSet(kind, iv)
}

func parseInterval(kind dispatch.Kind, expr string) (dispatch.AnyInterval, error) {
	expr = strings.TrimSpace(expr)
	if len(expr) < 3 {
		return nil, fmt.Errorf("malformed interval %q", expr)
	}

	lowerClosed := expr[0] == '['
	upperClosed := expr[len(expr)-1] == ']'
	body := expr[1 : len(expr)-1]

	parts := strings.SplitN(body, ",", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("malformed interval %q: expected \"lower,upper\"", expr)
	}

	lower, err := parseBound(kind, strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, err
	}
	upper, err := parseBound(kind, strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, err
	}

	return dispatch.NewInterval(lower, upper, lowerClosed, upperClosed, kind)
}

// parseBound returns nil for an empty string, which dispatch.NewInterval
// treats as an unbounded side.
func parseBound(kind dispatch.Kind, s string) (any, error) {
	if s == "" {
		return nil, nil
	}
	return parseValue(kind, s)
}

func parseValue(kind dispatch.Kind, s string) (any, error) {
	switch kind {
	case dispatch.KindInt:
		return strconv.Atoi(s)
	case dispatch.KindFloat64:
		return strconv.ParseFloat(s, 64)
	case dispatch.KindDate:
		return time.Parse(dateLayout, s)
	default:
		return nil, fmt.Errorf("unsupported domain for parsing: %s", kind)
	}
}
