// Copyright 2026 The esgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ast

// TypeScript statement-position declarations.
type (
	TSTypeAliasDeclaration struct {
		base
		Id             *Identifier
		TypeParameters []string
		TypeAnn        TSType
		Declare        bool
	}

	TSInterfaceDeclaration struct {
		base
		Id             *Identifier
		TypeParameters []string
		Extends        []TSType
		Body           []TSInterfaceMember
	}

	TSInterfaceMember struct {
		base
		Key       Expression
		Computed  bool
		Optional  bool
		Readonly  bool
		TypeAnn   TSType
		Method    bool
		Params    []*Param
		Return    TSType
		Comment   *Comment
	}

	TSEnumDeclaration struct {
		base
		Id      *Identifier
		Members []*TSEnumMember
		Const   bool
		Declare bool
	}

	TSEnumMember struct {
		base
		Id          Expression // Identifier or StringLiteral
		Initializer Expression
	}

	// TSModuleDeclaration models both `namespace A.B.C { ... }` and
	// `declare module "name" { ... }`. The printer prints Name as given
	// and does not merge nested module declarations into a dotted name;
	// a nested declaration in Body prints as its own block.
	TSModuleDeclaration struct {
		base
		Name      string // may already be dotted, e.g. "A.B.C"
		IsGlobal  bool   // `declare global { ... }`
		StringId  bool   // `declare module "foo"` vs `namespace foo`
		Body      []Statement
		Declare   bool
	}
)

func (*TSTypeAliasDeclaration) stmtNode() {}
func (*TSInterfaceDeclaration) stmtNode() {}
func (*TSEnumDeclaration) stmtNode()      {}
func (*TSModuleDeclaration) stmtNode()    {}

// TypeScript expression-position nodes.
type (
	TSAsExpression struct {
		base
		Expression Expression
		TypeAnn    TSType
	}

	TSSatisfiesExpression struct {
		base
		Expression Expression
		TypeAnn    TSType
	}

	TSNonNullExpression struct {
		base
		Expression Expression
	}

	TSTypeAssertion struct {
		base
		TypeAnn    TSType
		Expression Expression
	}

	TSInstantiationExpression struct {
		base
		Expression Expression
		TypeArgs   []TSType
	}
)

func (*TSAsExpression) exprNode()            {}
func (*TSSatisfiesExpression) exprNode()     {}
func (*TSNonNullExpression) exprNode()       {}
func (*TSTypeAssertion) exprNode()           {}
func (*TSInstantiationExpression) exprNode() {}

// TSType node kinds. Scope is deliberately bounded to the constructs named
// in spec.md §4.3.7 (mapped types, conditional types, type operators,
// import types, index signatures, tuple elements); anything else a real
// parser would hand over arrives pre-rendered as TSTypeRaw, the same way
// the teacher's opcode Arg falls back to a plain Expr when no specialised
// shape applies.
type (
	TSTypeRaw struct {
		base
		Text string
	}

	TSTypeReference struct {
		base
		Name     string
		TypeArgs []TSType
	}

	TSUnionType struct {
		base
		Types []TSType
	}

	TSIntersectionType struct {
		base
		Types []TSType
	}

	TSFunctionType struct {
		base
		TypeParameters []string
		Params         []*Param
		Return         TSType
	}

	TSArrayType struct {
		base
		ElementType TSType
	}

	TSTupleType struct {
		base
		Elements []TSTupleElement
	}

	TSTupleElement struct {
		Type     TSType
		Optional bool
		Rest     bool
		Label    string // named tuple member, "" if unlabeled
	}

	TSMappedType struct {
		base
		TypeParam    string
		Constraint   TSType
		NameType     TSType // the `as NameType` clause, nil if absent
		Optional     byte   // 0 = unchanged, '+' = add `?`, '-' = remove `?`
		Readonly     byte   // 0, '+', '-'
		Type         TSType
	}

	TSConditionalType struct {
		base
		CheckType   TSType
		ExtendsType TSType
		TrueType    TSType
		FalseType   TSType
	}

	TSTypeOperator struct {
		base
		Operator string // "keyof", "typeof", "readonly", "unique"
		Type     TSType
	}

	TSImportType struct {
		base
		Argument   string // the module specifier string, already quoted
		Qualifier  string // dotted name after the module specifier, may be empty
		TypeArgs   []TSType
	}

	TSIndexedAccessType struct {
		base
		ObjectType TSType
		IndexType  TSType
	}

	TSLiteralType struct {
		base
		Literal Expression // NumericLiteral, StringLiteral, BooleanLiteral, BigIntLiteral, or a unary-minus NumericLiteral
	}

	TSTypeLiteral struct {
		base
		Members []TSTypeLiteralMember
	}

	TSTypeLiteralMember struct {
		base
		Key      Expression
		Computed bool
		Optional bool
		Readonly bool
		TypeAnn  TSType
		Index    *TSIndexSignatureMember // non-nil when this member is an index signature
	}
)

func (*TSTypeRaw) tsTypeNode()            {}
func (*TSTypeReference) tsTypeNode()      {}
func (*TSUnionType) tsTypeNode()          {}
func (*TSIntersectionType) tsTypeNode()   {}
func (*TSFunctionType) tsTypeNode()       {}
func (*TSArrayType) tsTypeNode()          {}
func (*TSTupleType) tsTypeNode()          {}
func (*TSMappedType) tsTypeNode()         {}
func (*TSConditionalType) tsTypeNode()    {}
func (*TSTypeOperator) tsTypeNode()       {}
func (*TSImportType) tsTypeNode()         {}
func (*TSIndexedAccessType) tsTypeNode()  {}
func (*TSLiteralType) tsTypeNode()        {}
func (*TSTypeLiteral) tsTypeNode()        {}
