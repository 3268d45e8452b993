package filter

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// flightRulesRank orders flight categories from best to worst.
var flightRulesRank = map[string]int{
	"VFR":  0,
	"MVFR": 1,
	"IFR":  2,
	"LIFR": 3,
}

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache[CompiledFilter](size)
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.helperFuncs, funcs)
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) CachingCompiler {
	c := &exprCompiler{
		helperFuncs: createHelperFunctions(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// exprCompiler implements Compiler for expr-based filters
type exprCompiler struct {
	helperFuncs map[string]any
	cache       *lruCache[CompiledFilter]
}

// Compile compiles an expression into an executable filter
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	// Record fields are only bound at run time
	program, err := expr.Compile(expression,
		expr.Env(c.helperFuncs),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	filter := &exprFilter{
		expression: expression,
		program:    program,
	}

	if c.cache != nil {
		c.cache.Put(expression, filter)
	}

	return filter, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Size()
	}
	return 0
}

// Evaluate reports whether r matches. Runtime errors count as no match.
func (f *exprFilter) Evaluate(r Record) bool {
	ok, err := f.EvaluateErr(r)
	return err == nil && ok
}

// EvaluateErr is Evaluate with the runtime error exposed.
func (f *exprFilter) EvaluateErr(r Record) (bool, error) {
	result, err := expr.Run(f.program, createRuntimeEnvironment(r))
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			Subject:    r.Station,
			Reason:     "failed to evaluate expression",
			Err:        err,
		}
	}
	matched, ok := result.(bool)
	if !ok {
		return false, &EvaluationError{
			Expression: f.expression,
			Subject:    r.Station,
			Reason:     fmt.Sprintf("expression did not return a boolean (got %T)", result),
		}
	}
	return matched, nil
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// createHelperFunctions creates the static helper functions used during compilation
func createHelperFunctions() map[string]any {
	funcs := make(map[string]any, 16)
	addHelperFunctions(funcs)
	// Record helpers are rebound per record; these only fix their signatures
	funcs["hasCode"] = createHasCodeFunc(nil)
	funcs["rulesAtLeast"] = createRulesAtLeastFunc("")
	funcs["ageMinutes"] = createAgeFunc(time.Time{})
	return funcs
}

// addHelperFunctions adds all helper functions to the provided map
func addHelperFunctions(env map[string]any) {
	// Time helpers
	env["minutesSince"] = func(t time.Time) int {
		return int(time.Since(t).Minutes())
	}
	env["hoursAgo"] = func(hours int) time.Time {
		return time.Now().Add(-time.Duration(hours) * time.Hour)
	}
	env["now"] = time.Now
	// String helpers, case-insensitive unlike the contains/startsWith operators
	env["hasText"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["hasPrefix"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	// Unit helpers
	env["feetToMeters"] = func(ft float64) float64 {
		return ft * 0.3048
	}
	env["knotsToKmh"] = func(kt float64) float64 {
		return kt * 1.852
	}
}

// createRuntimeEnvironment creates the runtime environment for filter evaluation
func createRuntimeEnvironment(r Record) map[string]any {
	env := make(map[string]any, 48)

	addHelperFunctions(env)

	env["Record"] = r

	env["hasCode"] = createHasCodeFunc(r.WxCodes)
	env["rulesAtLeast"] = createRulesAtLeastFunc(r.FlightRules)
	env["ageMinutes"] = createAgeFunc(r.Time)

	env["Kind"] = r.Kind
	env["Station"] = r.Station
	env["Name"] = r.Name
	env["City"] = r.City
	env["State"] = r.State
	env["Country"] = r.Country
	env["Type"] = r.Type
	env["Reporting"] = r.Reporting
	env["ElevationFt"] = r.ElevationFt
	env["Latitude"] = r.Latitude
	env["Longitude"] = r.Longitude
	env["Distance"] = r.Distance
	env["Time"] = r.Time
	env["Raw"] = r.Raw
	env["FlightRules"] = r.FlightRules
	env["WxCodes"] = r.WxCodes
	env["Visibility"] = r.Visibility
	env["HasVisibility"] = r.HasVisibility
	env["Ceiling"] = r.Ceiling
	env["HasCeiling"] = r.HasCeiling
	env["WindSpeed"] = r.WindSpeed
	env["WindGust"] = r.WindGust
	env["Temperature"] = r.Temperature
	env["HasTemperature"] = r.HasTemperature
	env["Dewpoint"] = r.Dewpoint
	env["Altimeter"] = r.Altimeter
	env["Partial"] = r.Partial

	return env
}

// createHasCodeFunc matches weather codes case-insensitively, ignoring
// intensity prefixes, so hasCode("RA") matches "-RA" and "+RA".
func createHasCodeFunc(codes []string) func(string) bool {
	normalized := make([]string, len(codes))
	for i, c := range codes {
		normalized[i] = strings.TrimLeft(strings.ToUpper(c), "+-")
	}
	return func(code string) bool {
		target := strings.TrimLeft(strings.ToUpper(code), "+-")
		return slices.ContainsFunc(normalized, func(c string) bool {
			return strings.Contains(c, target)
		})
	}
}

func createRulesAtLeastFunc(rules string) func(string) bool {
	rank, known := flightRulesRank[strings.ToUpper(rules)]
	return func(threshold string) bool {
		want, ok := flightRulesRank[strings.ToUpper(threshold)]
		return known && ok && rank >= want
	}
}

func createAgeFunc(t time.Time) func() int {
	return func() int {
		if t.IsZero() {
			return -1
		}
		return int(time.Since(t).Minutes())
	}
}
