package calc

// StackSize is the number of registers on the calculator stack.
const StackSize = 12

// Stack is a fixed ring of registers. Index 0 is x, index 1 is y.
type Stack struct {
	nums [StackSize]float64
}

// RotateIn pushes v as the new x. The top register falls off.
func (s *Stack) RotateIn(v float64) {
	copy(s.nums[1:], s.nums[:StackSize-1])
	s.nums[0] = v
}

// RotateOut drops x and y in favour of v, shifting everything else down.
// The top register keeps its value, so it ends up duplicated.
func (s *Stack) RotateOut(v float64) {
	copy(s.nums[:StackSize-1], s.nums[1:])
	s.nums[0] = v
}

func (s *Stack) X() float64 { return s.nums[0] }
func (s *Stack) Y() float64 { return s.nums[1] }

// Register returns register i, 0 being x.
func (s *Stack) Register(i int) float64 {
	if i < 0 || i >= StackSize {
		return 0
	}
	return s.nums[i]
}

// Values returns a copy of the registers, x first.
func (s *Stack) Values() []float64 {
	out := make([]float64, StackSize)
	copy(out, s.nums[:])
	return out
}

func (s *Stack) binary(op binaryOp) {
	s.RotateOut(op(s.nums[1], s.nums[0]))
}

func (s *Stack) unary(op unaryOp) {
	s.nums[0] = op(s.nums[0])
}

func (s *Stack) swap() {
	s.nums[0], s.nums[1] = s.nums[1], s.nums[0]
}

func (s *Stack) pop() {
	s.RotateOut(s.nums[1])
}
