// Copyright 2026 The esgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ast

// expression types, grouped the way the teacher groups its expression
// variants in one declaration block.
type (
	Identifier struct {
		base
		Name       string
		Reference  ReferenceId
		HasRefID   bool
		TypeAnn    TSType // for binding positions, e.g. function params
		Optional   bool   // TS optional parameter `x?`
	}

	PrivateIdentifier struct {
		base
		Name string // without the leading '#'
	}

	ThisExpression struct{ base }
	SuperExpr      struct{ base }

	NullLiteral struct{ base }

	BooleanLiteral struct {
		base
		Value bool
	}

	// NumericLiteral holds a parsed double plus, for TypeScript contexts,
	// the original source text which must be reprinted verbatim.
	NumericLiteral struct {
		base
		Value float64
		Raw   string
	}

	// BigIntLiteral holds the textual digits (without the trailing `n`)
	// plus the base they were written in, exactly like geas's lzint.Value
	// keeps a literal's leading-zero/hex-ness alongside its value.
	BigIntLiteral struct {
		base
		Raw string // digits as written, no "n" suffix, e.g. "0x1f", "123"
	}

	StringLiteral struct {
		base
		Value string
	}

	RegExpLiteral struct {
		base
		Pattern string
		Flags   string
	}

	TemplateElement struct {
		Raw    string
		Cooked string
		Tail   bool
	}

	TemplateLiteral struct {
		base
		Quasis      []*TemplateElement
		Expressions []Expression
	}

	TaggedTemplateExpression struct {
		base
		Tag   Expression
		Quasi *TemplateLiteral
		Pure  bool
	}

	ArrayExpression struct {
		base
		// Elements holds one entry per array slot; a nil entry is an
		// elision (array hole), e.g. `[1, , 3]`.
		Elements []Expression
	}

	ObjectExpression struct {
		base
		Properties []ObjectPropertyNode
	}

	// ObjectPropertyNode is implemented by ordinary key/value properties
	// and by spread properties.
	ObjectPropertyNode interface {
		GetSpan() Span
		objectPropertyNode()
	}

	ObjectProperty struct {
		base
		Key       Expression
		Value     Expression
		Computed  bool
		Shorthand bool
		Method    bool
		Kind      MethodKind // MethodOrdinary, MethodGet, MethodSet
	}

	SpreadElement struct {
		base
		Argument Expression
	}

	FunctionExpression struct {
		base
		Id             *Identifier // non-nil for named function expressions
		Params         []*Param
		Body           *BlockStatement
		Async          bool
		Generator      bool
		TypeParameters []string
		ReturnType     TSType
		IsMethodBody   bool // true when this is a ClassMember's Value, suppresses the `function` keyword
	}

	ArrowFunctionExpression struct {
		base
		Params         []*Param
		Body           Node // *BlockStatement, or an Expression when ExpressionBody is true
		ExpressionBody bool
		Async          bool
		TypeParameters []string
		ReturnType     TSType
	}

	ClassExpression struct {
		base
		Id         *Identifier
		SuperClass Expression
		Body       *ClassBody
		Decorators []Expression
	}

	UnaryExpression struct {
		base
		Operator string // "+", "-", "!", "~", "typeof", "void", "delete"
		Argument Expression
	}

	UpdateExpression struct {
		base
		Operator string // "++" or "--"
		Argument Expression
		Prefix   bool
	}

	BinaryExpression struct {
		base
		Operator string
		Left     Expression
		Right    Expression
	}

	PrivateInExpression struct {
		base
		Left  *PrivateIdentifier
		Right Expression
	}

	LogicalExpression struct {
		base
		Operator string // "&&", "||", "??"
		Left     Expression
		Right    Expression
	}

	AssignmentExpression struct {
		base
		Operator string // "=", "+=", "&&=", ...
		Left     Expression // Identifier, MemberExpression, or a pattern
		Right    Expression
	}

	ConditionalExpression struct {
		base
		Test       Expression
		Consequent Expression
		Alternate  Expression
	}

	CallExpression struct {
		base
		Callee    Expression
		Arguments []Expression
		Optional  bool
		Pure      bool
		TypeArgs  []TSType
	}

	NewExpression struct {
		base
		Callee    Expression
		Arguments []Expression
		Pure      bool
		TypeArgs  []TSType
	}

	MemberExpression struct {
		base
		Object   Expression
		Property Expression // Identifier/PrivateIdentifier when !Computed, else any Expression
		Computed bool
		Optional bool
	}

	SequenceExpression struct {
		base
		Expressions []Expression
	}

	YieldExpression struct {
		base
		Argument Expression
		Delegate bool
	}

	AwaitExpression struct {
		base
		Argument Expression
	}

	ParenthesizedExpression struct {
		base
		Expression Expression
	}
)

func (*ObjectProperty) objectPropertyNode() {}
func (*SpreadElement) objectPropertyNode()  {}

func (*Identifier) exprNode()               {}
func (*PrivateIdentifier) exprNode()        {}
func (*ThisExpression) exprNode()           {}
func (*SuperExpr) exprNode()                {}
func (*NullLiteral) exprNode()              {}
func (*BooleanLiteral) exprNode()           {}
func (*NumericLiteral) exprNode()           {}
func (*BigIntLiteral) exprNode()            {}
func (*StringLiteral) exprNode()            {}
func (*RegExpLiteral) exprNode()            {}
func (*TemplateLiteral) exprNode()          {}
func (*TaggedTemplateExpression) exprNode() {}
func (*ArrayExpression) exprNode()          {}
func (*ObjectExpression) exprNode()         {}
func (*SpreadElement) exprNode()            {}
func (*FunctionExpression) exprNode()       {}
func (*ArrowFunctionExpression) exprNode()  {}
func (*ClassExpression) exprNode()          {}
func (*UnaryExpression) exprNode()          {}
func (*UpdateExpression) exprNode()         {}
func (*BinaryExpression) exprNode()         {}
func (*PrivateInExpression) exprNode()      {}
func (*LogicalExpression) exprNode()        {}
func (*AssignmentExpression) exprNode()     {}
func (*ConditionalExpression) exprNode()    {}
func (*CallExpression) exprNode()           {}
func (*NewExpression) exprNode()            {}
func (*MemberExpression) exprNode()         {}
func (*SequenceExpression) exprNode()       {}
func (*YieldExpression) exprNode()          {}
func (*AwaitExpression) exprNode()          {}
func (*ParenthesizedExpression) exprNode()  {}

func (*Identifier) bindingNode() {}

// ArrayPattern and ObjectPattern are destructuring binding targets; they
// also double as Expression in assignment-pattern contexts (`({a} = x)`),
// so they implement both interfaces like the upstream grammar allows.
type (
	ArrayPattern struct {
		base
		Elements []BindingTarget // nil entry = elision
		Rest     BindingTarget   // non-nil when the pattern ends in `...rest`
	}

	ObjectPattern struct {
		base
		Properties []ObjectPatternProperty
		Rest       BindingTarget
	}

	ObjectPatternProperty struct {
		base
		Key       Expression
		Value     BindingTarget
		Default   Expression
		Computed  bool
		Shorthand bool
	}

	AssignmentPattern struct {
		base
		Left  BindingTarget
		Right Expression
	}

	RestElement struct {
		base
		Argument BindingTarget
	}
)

func (*ArrayPattern) bindingNode()       {}
func (*ObjectPattern) bindingNode()      {}
func (*AssignmentPattern) bindingNode()  {}
func (*RestElement) bindingNode()        {}

func (*ArrayPattern) exprNode()      {}
func (*ObjectPattern) exprNode()     {}
func (*AssignmentPattern) exprNode() {}
func (*RestElement) exprNode()       {}
