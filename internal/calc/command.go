package calc

import "math"

type (
	binaryOp func(y, x float64) float64
	unaryOp  func(x float64) float64
)

// operator is anything the calculator can apply to the stack. Operators
// taking two operands push a pending number before they run.
type operator struct {
	apply  func(*Stack)
	binary bool
}

func binary(op binaryOp) operator {
	return operator{apply: func(s *Stack) { s.binary(op) }, binary: true}
}

func unary(op unaryOp) operator {
	return operator{apply: func(s *Stack) { s.unary(op) }}
}

var operators = map[string]operator{
	"add":  binary(func(y, x float64) float64 { return y + x }),
	"sub":  binary(func(y, x float64) float64 { return y - x }),
	"mul":  binary(func(y, x float64) float64 { return y * x }),
	"div":  binary(func(y, x float64) float64 { return y / x }),
	"pow":  binary(math.Pow),
	"nrt":  binary(func(y, x float64) float64 { return math.Pow(y, 1/x) }),
	"idiv": binary(func(y, x float64) float64 { return math.Trunc(y / x) }),
	"mod":  binary(math.Mod),
	"swp":  {apply: (*Stack).swap, binary: true},

	"neg":  unary(func(x float64) float64 { return -x }),
	"sqrt": unary(math.Sqrt),
	"sqr":  unary(func(x float64) float64 { return x * x }),
	"sin":  unary(math.Sin),
	"cos":  unary(math.Cos),
	"tan":  unary(math.Tan),
	"asin": unary(math.Asin),
	"acos": unary(math.Acos),
	"atan": unary(math.Atan),
	"rad":  unary(func(x float64) float64 { return x / 360 * 2 * math.Pi }),
	"deg":  unary(func(x float64) float64 { return x * 360 / (2 * math.Pi) }),
	"exp":  unary(func(x float64) float64 { return math.Pow(10, x) }),
	"pop":  {apply: (*Stack).pop},
}

// keyOperators maps single keys to operator words.
var keyOperators = map[rune]string{
	'+': "add",
	'-': "sub",
	'*': "mul",
	'/': "div",
	'%': "mod",
	'N': "neg",
	'S': "swp",
	'P': "pow",
	'R': "nrt",
	'C': "pop",
}

// Register commands take a single letter argument, "sto a".
const (
	cmdStore  = "sto"
	cmdRecall = "rcl"
	cmdDelete = "del"
)
