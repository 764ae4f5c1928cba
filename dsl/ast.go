package dsl

// Symbol names an unknown value to be solved for.
type Symbol string

// Unit is the physical unit of a Quantity.
type Unit uint8

const (
	Ohm Unit = iota
	Farad
	Henry
	Volt
	Amp
	Hz
	Deg
	Dimensionless
)

// String returns the unit's conventional symbol.
func (u Unit) String() string {
	switch u {
	case Ohm:
		return "Ω"
	case Farad:
		return "F"
	case Henry:
		return "H"
	case Volt:
		return "V"
	case Amp:
		return "A"
	case Hz:
		return "Hz"
	case Deg:
		return "°"
	default:
		return ""
	}
}

// Quantity is a numeric value normalized to SI units.
type Quantity struct {
	ValueSI float64
	Unit    Unit
}

// ValueExpr is a typed element value: a known Quantity or an Unknown
// symbol.
type ValueExpr interface {
	isValueExpr()
}

// KnownValue is a concrete quantity.
type KnownValue struct {
	Quantity Quantity
}

// UnknownValue is a symbolic placeholder.
type UnknownValue struct {
	Sym Symbol
}

func (KnownValue) isValueExpr()   {}
func (UnknownValue) isValueExpr() {}

// AcRef selects the amplitude convention of an AC analysis.
type AcRef uint8

const (
	Rms AcRef = iota
	Peak
)

// Analysis selects the excitation regime of a program.
type Analysis interface {
	isAnalysis()
}

// ACAnalysis is a single-frequency AC analysis.
type ACAnalysis struct {
	FrequencyHz float64
	Ref         AcRef
}

// DCAnalysis is a DC (ω = 0) analysis.
type DCAnalysis struct{}

func (ACAnalysis) isAnalysis() {}
func (DCAnalysis) isAnalysis() {}

// ElemKind is the element taxonomy of the DSL.
type ElemKind uint8

const (
	ResistorElem ElemKind = iota
	InductorElem
	CapacitorElem
	VoltageSourceElem
	CurrentSourceElem
)

// ElementParams carries the kind-specific parameters of an element.
type ElementParams interface {
	isElementParams()
}

// PassiveParams parameterizes R, L, and C elements.
type PassiveParams struct {
	Value ValueExpr
}

// VacParams parameterizes an AC voltage source: magnitude plus phase in
// degrees.
type VacParams struct {
	Mag      ValueExpr
	PhaseDeg float64
}

// VdcParams parameterizes a DC voltage source.
type VdcParams struct {
	Value ValueExpr
}

// IdcParams parameterizes a DC current source.
type IdcParams struct {
	Value ValueExpr
}

func (PassiveParams) isElementParams() {}
func (VacParams) isElementParams()     {}
func (VdcParams) isElementParams()     {}
func (IdcParams) isElementParams()     {}

// Element is one circuit element declaration.
type Element struct {
	Kind   ElemKind
	ID     string
	Nodes  [2]string
	Params ElementParams
}

// VoltageReference selects how a voltage expression is referenced.
type VoltageReference interface {
	isVoltageReference()
	requiresGround() bool
}

// GroundRelative is V(node) measured against the declared ground.
type GroundRelative struct {
	Node string
}

// Differential is V(a, b), always valid.
type Differential struct {
	A, B string
}

// NodeRelative is V(node) measured against an explicit reference node.
type NodeRelative struct {
	Node, Ref string
}

func (GroundRelative) isVoltageReference() {}
func (Differential) isVoltageReference()   {}
func (NodeRelative) isVoltageReference()   {}

func (GroundRelative) requiresGround() bool { return true }
func (Differential) requiresGround() bool   { return false }
func (NodeRelative) requiresGround() bool   { return false }

// Expr is a constraint or solve-target expression.
type Expr interface {
	isExpr()
}

// SymExpr references an unknown symbol.
type SymExpr struct {
	Sym Symbol
}

// LitExpr is a literal quantity.
type LitExpr struct {
	Quantity Quantity
}

// VExpr is a node voltage.
type VExpr struct {
	Ref VoltageReference
}

// IExpr is the current through the named element.
type IExpr struct {
	ID string
}

// PExpr is the power dissipated in the named element.
type PExpr struct {
	ID string
}

// ZeqExpr is the equivalent impedance between two nodes.
type ZeqExpr struct {
	A, B string
}

// AbsExpr is the magnitude of its inner expression.
type AbsExpr struct {
	Inner Expr
}

// AngleDegExpr is the angle of its inner expression, in degrees.
type AngleDegExpr struct {
	Inner Expr
}

func (SymExpr) isExpr()      {}
func (LitExpr) isExpr()      {}
func (VExpr) isExpr()        {}
func (IExpr) isExpr()        {}
func (PExpr) isExpr()        {}
func (ZeqExpr) isExpr()      {}
func (AbsExpr) isExpr()      {}
func (AngleDegExpr) isExpr() {}

// CmpOp is a constraint comparison operator.
type CmpOp uint8

const (
	Eq CmpOp = iota
	Ne
	Lt
	Le
	Gt
	Ge
)

// Constraint relates two expressions.
type Constraint struct {
	LHS Expr
	Op  CmpOp
	RHS Expr
}

// SolveTarget is something the program asks to be solved: an expression
// to evaluate or a symbol to determine.
type SolveTarget interface {
	isSolveTarget()
}

// ExprTarget asks for the value of an expression.
type ExprTarget struct {
	Expr Expr
}

// SymTarget asks for the value of a symbol.
type SymTarget struct {
	Sym Symbol
}

func (ExprTarget) isSolveTarget() {}
func (SymTarget) isSolveTarget()  {}

// Program is a complete analysis description.
type Program struct {
	CircuitName string
	Ground      string // empty when no ground is declared
	Analysis    Analysis
	Elements    []Element
	Constraints []Constraint
	Solve       []SolveTarget
}

// HasGround reports whether the program declares a ground node.
func (p *Program) HasGround() bool { return p.Ground != "" }

// RequiresGround reports whether any constraint or solve target contains
// a ground-relative voltage reference.
func (p *Program) RequiresGround() bool {
	for _, c := range p.Constraints {
		if exprRequiresGround(c.LHS) || exprRequiresGround(c.RHS) {
			return true
		}
	}
	for _, t := range p.Solve {
		if et, ok := t.(ExprTarget); ok && exprRequiresGround(et.Expr) {
			return true
		}
	}

	return false
}

func exprRequiresGround(e Expr) bool {
	switch e := e.(type) {
	case VExpr:
		return e.Ref.requiresGround()
	case AbsExpr:
		return exprRequiresGround(e.Inner)
	case AngleDegExpr:
		return exprRequiresGround(e.Inner)
	default:
		return false
	}
}
