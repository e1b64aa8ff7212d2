// Copyright 2026 The esgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package astjson decodes an ESTree-shaped JSON document into an
// *ast.Program, for callers (notably cmd/esgen and cmd/esgen-perf) that
// feed this module's printer from an externally parsed AST: this module
// never parses JavaScript/TypeScript itself (spec §6.2, "parses
// (external)"), so the JSON interchange shape is the handoff point.
//
// Coverage is intentionally bounded to the node kinds that occur in
// ordinary JavaScript/TypeScript source: the full decorator/JSX/TS-type
// surface the emitter can print is not all reachable through this
// decoder (see DESIGN.md). An unsupported "type" discriminator is a
// decode error, never a silently-dropped node.
package astjson

import (
	"encoding/json"
	"fmt"

	"github.com/esgen/esgen/ast"
)

// raw is one ESTree node: every node carries a "type" discriminator and
// whatever shape-specific fields that type needs.
type raw struct {
	Type string `json:"type"`
}

// Decode parses a JSON-encoded ESTree Program into an *ast.Program.
func Decode(data []byte) (*ast.Program, error) {
	var doc struct {
		SourceType string            `json:"sourceType"`
		JSX        bool              `json:"jsx"`
		TypeScript bool              `json:"typescript"`
		Hashbang   string            `json:"hashbang"`
		Body       []json.RawMessage `json:"body"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("astjson: %w", err)
	}
	body, err := decodeStatements(doc.Body)
	if err != nil {
		return nil, err
	}
	return &ast.Program{
		SourceType: ast.SourceType{
			TypeScript: doc.TypeScript,
			JSX:        doc.JSX,
			Module:     doc.SourceType == "module",
		},
		Hashbang: doc.Hashbang,
		Body:     body,
	}, nil
}

func decodeStatements(list []json.RawMessage) ([]ast.Statement, error) {
	out := make([]ast.Statement, 0, len(list))
	for _, item := range list {
		st, err := decodeStatement(item)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}

func typeOf(data json.RawMessage) (string, error) {
	if len(data) == 0 || string(data) == "null" {
		return "", nil
	}
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return "", fmt.Errorf("astjson: %w", err)
	}
	return r.Type, nil
}

func decodeStatement(data json.RawMessage) (ast.Statement, error) {
	t, err := typeOf(data)
	if err != nil {
		return nil, err
	}
	switch t {
	case "ExpressionStatement":
		var n struct {
			Expression json.RawMessage `json:"expression"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		expr, err := decodeExpression(n.Expression)
		if err != nil {
			return nil, err
		}
		return &ast.ExpressionStatement{Expression: expr}, nil

	case "BlockStatement":
		var n struct {
			Body []json.RawMessage `json:"body"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		body, err := decodeStatements(n.Body)
		if err != nil {
			return nil, err
		}
		return &ast.BlockStatement{Body: body}, nil

	case "EmptyStatement":
		return &ast.EmptyStatement{}, nil

	case "VariableDeclaration":
		var n struct {
			Kind         string            `json:"kind"`
			Declarations []json.RawMessage `json:"declarations"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		decls := make([]*ast.VariableDeclarator, 0, len(n.Declarations))
		for _, d := range n.Declarations {
			var dn struct {
				Id   json.RawMessage `json:"id"`
				Init json.RawMessage `json:"init"`
			}
			if err := json.Unmarshal(d, &dn); err != nil {
				return nil, err
			}
			id, err := decodeBindingTarget(dn.Id)
			if err != nil {
				return nil, err
			}
			var init ast.Expression
			if len(dn.Init) > 0 && string(dn.Init) != "null" {
				init, err = decodeExpression(dn.Init)
				if err != nil {
					return nil, err
				}
			}
			decls = append(decls, &ast.VariableDeclarator{Id: id, Init: init})
		}
		return &ast.VariableDeclaration{Kind: variableKind(n.Kind), Declarations: decls}, nil

	case "FunctionDeclaration":
		return decodeFunctionDeclaration(data)

	case "ReturnStatement":
		arg, err := decodeOptionalExpressionField(data, "argument")
		if err != nil {
			return nil, err
		}
		return &ast.ReturnStatement{Argument: arg}, nil

	case "IfStatement":
		var n struct {
			Test       json.RawMessage `json:"test"`
			Consequent json.RawMessage `json:"consequent"`
			Alternate  json.RawMessage `json:"alternate"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		test, err := decodeExpression(n.Test)
		if err != nil {
			return nil, err
		}
		cons, err := decodeStatement(n.Consequent)
		if err != nil {
			return nil, err
		}
		var alt ast.Statement
		if len(n.Alternate) > 0 && string(n.Alternate) != "null" {
			alt, err = decodeStatement(n.Alternate)
			if err != nil {
				return nil, err
			}
		}
		return &ast.IfStatement{Test: test, Consequent: cons, Alternate: alt}, nil

	case "WhileStatement":
		var n struct {
			Test json.RawMessage `json:"test"`
			Body json.RawMessage `json:"body"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		test, err := decodeExpression(n.Test)
		if err != nil {
			return nil, err
		}
		body, err := decodeStatement(n.Body)
		if err != nil {
			return nil, err
		}
		return &ast.WhileStatement{Test: test, Body: body}, nil

	case "ForStatement":
		var n struct {
			Init   json.RawMessage `json:"init"`
			Test   json.RawMessage `json:"test"`
			Update json.RawMessage `json:"update"`
			Body   json.RawMessage `json:"body"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		var init ast.Node
		if len(n.Init) > 0 && string(n.Init) != "null" {
			it, err := typeOf(n.Init)
			if err != nil {
				return nil, err
			}
			if it == "VariableDeclaration" {
				init, err = decodeStatement(n.Init)
			} else {
				init, err = decodeExpression(n.Init)
			}
			if err != nil {
				return nil, err
			}
		}
		test, err := decodeOptionalExpression(n.Test)
		if err != nil {
			return nil, err
		}
		update, err := decodeOptionalExpression(n.Update)
		if err != nil {
			return nil, err
		}
		body, err := decodeStatement(n.Body)
		if err != nil {
			return nil, err
		}
		return &ast.ForStatement{Init: init, Test: test, Update: update, Body: body}, nil

	case "BreakStatement":
		return &ast.BreakStatement{}, nil

	case "ContinueStatement":
		return &ast.ContinueStatement{}, nil

	case "ThrowStatement":
		var n struct {
			Argument json.RawMessage `json:"argument"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		arg, err := decodeExpression(n.Argument)
		if err != nil {
			return nil, err
		}
		return &ast.ThrowStatement{Argument: arg}, nil

	case "TryStatement":
		var n struct {
			Block   json.RawMessage `json:"block"`
			Handler json.RawMessage `json:"handler"`
			Finally json.RawMessage `json:"finalizer"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		blockStmt, err := decodeStatement(n.Block)
		if err != nil {
			return nil, err
		}
		try := &ast.TryStatement{Block: blockStmt.(*ast.BlockStatement)}
		if len(n.Handler) > 0 && string(n.Handler) != "null" {
			var h struct {
				Param json.RawMessage `json:"param"`
				Body  json.RawMessage `json:"body"`
			}
			if err := json.Unmarshal(n.Handler, &h); err != nil {
				return nil, err
			}
			var param ast.BindingTarget
			if len(h.Param) > 0 && string(h.Param) != "null" {
				param, err = decodeBindingTarget(h.Param)
				if err != nil {
					return nil, err
				}
			}
			hbody, err := decodeStatement(h.Body)
			if err != nil {
				return nil, err
			}
			try.Handler = &ast.CatchClause{Param: param, Body: hbody.(*ast.BlockStatement)}
		}
		if len(n.Finally) > 0 && string(n.Finally) != "null" {
			fin, err := decodeStatement(n.Finally)
			if err != nil {
				return nil, err
			}
			try.Finalizer = fin.(*ast.BlockStatement)
		}
		return try, nil

	default:
		return nil, fmt.Errorf("astjson: unsupported statement type %q", t)
	}
}

func decodeFunctionDeclaration(data json.RawMessage) (ast.Statement, error) {
	var n struct {
		Id        json.RawMessage   `json:"id"`
		Params    []json.RawMessage `json:"params"`
		Body      json.RawMessage   `json:"body"`
		Async     bool              `json:"async"`
		Generator bool              `json:"generator"`
	}
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	id, err := decodeIdentifierPtr(n.Id)
	if err != nil {
		return nil, err
	}
	params, err := decodeParams(n.Params)
	if err != nil {
		return nil, err
	}
	bodyStmt, err := decodeStatement(n.Body)
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDeclaration{
		Id: id, Params: params, Body: bodyStmt.(*ast.BlockStatement),
		Async: n.Async, Generator: n.Generator,
	}, nil
}

func decodeParams(list []json.RawMessage) ([]*ast.Param, error) {
	out := make([]*ast.Param, 0, len(list))
	for _, item := range list {
		t, err := typeOf(item)
		if err != nil {
			return nil, err
		}
		if t == "RestElement" {
			var n struct {
				Argument json.RawMessage `json:"argument"`
			}
			if err := json.Unmarshal(item, &n); err != nil {
				return nil, err
			}
			target, err := decodeBindingTarget(n.Argument)
			if err != nil {
				return nil, err
			}
			out = append(out, &ast.Param{Target: target, Rest: true})
			continue
		}
		if t == "AssignmentPattern" {
			var n struct {
				Left  json.RawMessage `json:"left"`
				Right json.RawMessage `json:"right"`
			}
			if err := json.Unmarshal(item, &n); err != nil {
				return nil, err
			}
			target, err := decodeBindingTarget(n.Left)
			if err != nil {
				return nil, err
			}
			def, err := decodeExpression(n.Right)
			if err != nil {
				return nil, err
			}
			out = append(out, &ast.Param{Target: target, Default: def})
			continue
		}
		target, err := decodeBindingTarget(item)
		if err != nil {
			return nil, err
		}
		out = append(out, &ast.Param{Target: target})
	}
	return out, nil
}

func decodeBindingTarget(data json.RawMessage) (ast.BindingTarget, error) {
	t, err := typeOf(data)
	if err != nil {
		return nil, err
	}
	switch t {
	case "Identifier":
		id, err := decodeIdentifierPtr(data)
		if err != nil {
			return nil, err
		}
		return id, nil
	case "ArrayPattern":
		var n struct {
			Elements []json.RawMessage `json:"elements"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		elems := make([]ast.BindingTarget, 0, len(n.Elements))
		for _, e := range n.Elements {
			if len(e) == 0 || string(e) == "null" {
				elems = append(elems, nil)
				continue
			}
			bt, err := decodeBindingTarget(e)
			if err != nil {
				return nil, err
			}
			elems = append(elems, bt)
		}
		return &ast.ArrayPattern{Elements: elems}, nil
	case "ObjectPattern":
		var n struct {
			Properties []json.RawMessage `json:"properties"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		props := make([]ast.ObjectPatternProperty, 0, len(n.Properties))
		for _, p := range n.Properties {
			var pn struct {
				Key       json.RawMessage `json:"key"`
				Value     json.RawMessage `json:"value"`
				Computed  bool            `json:"computed"`
				Shorthand bool            `json:"shorthand"`
			}
			if err := json.Unmarshal(p, &pn); err != nil {
				return nil, err
			}
			key, err := decodeExpression(pn.Key)
			if err != nil {
				return nil, err
			}
			val, err := decodeBindingTarget(pn.Value)
			if err != nil {
				return nil, err
			}
			props = append(props, ast.ObjectPatternProperty{Key: key, Value: val, Computed: pn.Computed, Shorthand: pn.Shorthand})
		}
		return &ast.ObjectPattern{Properties: props}, nil
	case "AssignmentPattern":
		var n struct {
			Left  json.RawMessage `json:"left"`
			Right json.RawMessage `json:"right"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		left, err := decodeBindingTarget(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeExpression(n.Right)
		if err != nil {
			return nil, err
		}
		return &ast.AssignmentPattern{Left: left, Right: right}, nil
	default:
		return nil, fmt.Errorf("astjson: unsupported binding target type %q", t)
	}
}

func decodeIdentifierPtr(data json.RawMessage) (*ast.Identifier, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var n struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	return &ast.Identifier{Name: n.Name}, nil
}

func decodeOptionalExpressionField(data json.RawMessage, field string) (ast.Expression, error) {
	var n map[string]json.RawMessage
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	return decodeOptionalExpression(n[field])
}

func decodeOptionalExpression(data json.RawMessage) (ast.Expression, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	return decodeExpression(data)
}

func decodeExpression(data json.RawMessage) (ast.Expression, error) {
	t, err := typeOf(data)
	if err != nil {
		return nil, err
	}
	switch t {
	case "Identifier":
		return decodeIdentifierPtr(data)

	case "ThisExpression":
		return &ast.ThisExpression{}, nil

	case "Super":
		return &ast.SuperExpr{}, nil

	case "Literal":
		return decodeLiteral(data)

	case "TemplateLiteral":
		var n struct {
			Quasis      []json.RawMessage `json:"quasis"`
			Expressions []json.RawMessage `json:"expressions"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		quasis := make([]*ast.TemplateElement, 0, len(n.Quasis))
		for _, q := range n.Quasis {
			var qn struct {
				Tail  bool `json:"tail"`
				Value struct {
					Raw    string `json:"raw"`
					Cooked string `json:"cooked"`
				} `json:"value"`
			}
			if err := json.Unmarshal(q, &qn); err != nil {
				return nil, err
			}
			quasis = append(quasis, &ast.TemplateElement{Raw: qn.Value.Raw, Cooked: qn.Value.Cooked, Tail: qn.Tail})
		}
		exprs, err := decodeExpressionList(n.Expressions)
		if err != nil {
			return nil, err
		}
		return &ast.TemplateLiteral{Quasis: quasis, Expressions: exprs}, nil

	case "ArrayExpression":
		var n struct {
			Elements []json.RawMessage `json:"elements"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		elems := make([]ast.Expression, 0, len(n.Elements))
		for _, e := range n.Elements {
			if len(e) == 0 || string(e) == "null" {
				elems = append(elems, nil)
				continue
			}
			ex, err := decodeExpression(e)
			if err != nil {
				return nil, err
			}
			elems = append(elems, ex)
		}
		return &ast.ArrayExpression{Elements: elems}, nil

	case "ObjectExpression":
		var n struct {
			Properties []json.RawMessage `json:"properties"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		props := make([]ast.ObjectPropertyNode, 0, len(n.Properties))
		for _, p := range n.Properties {
			pt, err := typeOf(p)
			if err != nil {
				return nil, err
			}
			if pt == "SpreadElement" {
				var sn struct {
					Argument json.RawMessage `json:"argument"`
				}
				if err := json.Unmarshal(p, &sn); err != nil {
					return nil, err
				}
				arg, err := decodeExpression(sn.Argument)
				if err != nil {
					return nil, err
				}
				props = append(props, &ast.SpreadElement{Argument: arg})
				continue
			}
			var pn struct {
				Key       json.RawMessage `json:"key"`
				Value     json.RawMessage `json:"value"`
				Computed  bool            `json:"computed"`
				Shorthand bool            `json:"shorthand"`
			}
			if err := json.Unmarshal(p, &pn); err != nil {
				return nil, err
			}
			key, err := decodeExpression(pn.Key)
			if err != nil {
				return nil, err
			}
			val, err := decodeExpression(pn.Value)
			if err != nil {
				return nil, err
			}
			props = append(props, &ast.ObjectProperty{Key: key, Value: val, Computed: pn.Computed, Shorthand: pn.Shorthand})
		}
		return &ast.ObjectExpression{Properties: props}, nil

	case "FunctionExpression":
		var n struct {
			Id        json.RawMessage   `json:"id"`
			Params    []json.RawMessage `json:"params"`
			Body      json.RawMessage   `json:"body"`
			Async     bool              `json:"async"`
			Generator bool              `json:"generator"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		id, err := decodeIdentifierPtr(n.Id)
		if err != nil {
			return nil, err
		}
		params, err := decodeParams(n.Params)
		if err != nil {
			return nil, err
		}
		bodyStmt, err := decodeStatement(n.Body)
		if err != nil {
			return nil, err
		}
		return &ast.FunctionExpression{Id: id, Params: params, Body: bodyStmt.(*ast.BlockStatement), Async: n.Async, Generator: n.Generator}, nil

	case "ArrowFunctionExpression":
		var n struct {
			Params     []json.RawMessage `json:"params"`
			Body       json.RawMessage   `json:"body"`
			Async      bool              `json:"async"`
			Expression bool              `json:"expression"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		params, err := decodeParams(n.Params)
		if err != nil {
			return nil, err
		}
		bt, err := typeOf(n.Body)
		if err != nil {
			return nil, err
		}
		var body ast.Node
		if bt == "BlockStatement" {
			body, err = decodeStatement(n.Body)
		} else {
			body, err = decodeExpression(n.Body)
		}
		if err != nil {
			return nil, err
		}
		return &ast.ArrowFunctionExpression{Params: params, Body: body, ExpressionBody: bt != "BlockStatement", Async: n.Async}, nil

	case "UnaryExpression":
		var n struct {
			Operator string          `json:"operator"`
			Argument json.RawMessage `json:"argument"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		arg, err := decodeExpression(n.Argument)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpression{Operator: n.Operator, Argument: arg}, nil

	case "UpdateExpression":
		var n struct {
			Operator string          `json:"operator"`
			Argument json.RawMessage `json:"argument"`
			Prefix   bool            `json:"prefix"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		arg, err := decodeExpression(n.Argument)
		if err != nil {
			return nil, err
		}
		return &ast.UpdateExpression{Operator: n.Operator, Argument: arg, Prefix: n.Prefix}, nil

	case "BinaryExpression":
		op, left, right, err := decodeBinaryShape(data)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpression{Operator: op, Left: left, Right: right}, nil

	case "LogicalExpression":
		op, left, right, err := decodeBinaryShape(data)
		if err != nil {
			return nil, err
		}
		return &ast.LogicalExpression{Operator: op, Left: left, Right: right}, nil

	case "AssignmentExpression":
		var n struct {
			Operator string          `json:"operator"`
			Left     json.RawMessage `json:"left"`
			Right    json.RawMessage `json:"right"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		left, err := decodeExpression(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeExpression(n.Right)
		if err != nil {
			return nil, err
		}
		return &ast.AssignmentExpression{Operator: n.Operator, Left: left, Right: right}, nil

	case "ConditionalExpression":
		var n struct {
			Test       json.RawMessage `json:"test"`
			Consequent json.RawMessage `json:"consequent"`
			Alternate  json.RawMessage `json:"alternate"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		test, err := decodeExpression(n.Test)
		if err != nil {
			return nil, err
		}
		cons, err := decodeExpression(n.Consequent)
		if err != nil {
			return nil, err
		}
		alt, err := decodeExpression(n.Alternate)
		if err != nil {
			return nil, err
		}
		return &ast.ConditionalExpression{Test: test, Consequent: cons, Alternate: alt}, nil

	case "CallExpression":
		var n struct {
			Callee    json.RawMessage   `json:"callee"`
			Arguments []json.RawMessage `json:"arguments"`
			Optional  bool              `json:"optional"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		callee, err := decodeExpression(n.Callee)
		if err != nil {
			return nil, err
		}
		args, err := decodeExpressionList(n.Arguments)
		if err != nil {
			return nil, err
		}
		return &ast.CallExpression{Callee: callee, Arguments: args, Optional: n.Optional}, nil

	case "NewExpression":
		var n struct {
			Callee    json.RawMessage   `json:"callee"`
			Arguments []json.RawMessage `json:"arguments"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		callee, err := decodeExpression(n.Callee)
		if err != nil {
			return nil, err
		}
		args, err := decodeExpressionList(n.Arguments)
		if err != nil {
			return nil, err
		}
		return &ast.NewExpression{Callee: callee, Arguments: args}, nil

	case "MemberExpression":
		var n struct {
			Object   json.RawMessage `json:"object"`
			Property json.RawMessage `json:"property"`
			Computed bool            `json:"computed"`
			Optional bool            `json:"optional"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		obj, err := decodeExpression(n.Object)
		if err != nil {
			return nil, err
		}
		var prop ast.Expression
		if n.Computed {
			prop, err = decodeExpression(n.Property)
		} else {
			prop, err = decodeIdentifierPtr(n.Property)
		}
		if err != nil {
			return nil, err
		}
		return &ast.MemberExpression{Object: obj, Property: prop, Computed: n.Computed, Optional: n.Optional}, nil

	case "SequenceExpression":
		var n struct {
			Expressions []json.RawMessage `json:"expressions"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		exprs, err := decodeExpressionList(n.Expressions)
		if err != nil {
			return nil, err
		}
		return &ast.SequenceExpression{Expressions: exprs}, nil

	case "SpreadElement":
		var n struct {
			Argument json.RawMessage `json:"argument"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		arg, err := decodeExpression(n.Argument)
		if err != nil {
			return nil, err
		}
		return &ast.SpreadElement{Argument: arg}, nil

	default:
		return nil, fmt.Errorf("astjson: unsupported expression type %q", t)
	}
}

func decodeBinaryShape(data json.RawMessage) (op string, left, right ast.Expression, err error) {
	var n struct {
		Operator string          `json:"operator"`
		Left     json.RawMessage `json:"left"`
		Right    json.RawMessage `json:"right"`
	}
	if err := json.Unmarshal(data, &n); err != nil {
		return "", nil, nil, err
	}
	left, err = decodeExpression(n.Left)
	if err != nil {
		return "", nil, nil, err
	}
	right, err = decodeExpression(n.Right)
	if err != nil {
		return "", nil, nil, err
	}
	return n.Operator, left, right, nil
}

func decodeExpressionList(list []json.RawMessage) ([]ast.Expression, error) {
	out := make([]ast.Expression, 0, len(list))
	for _, item := range list {
		e, err := decodeExpression(item)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func decodeLiteral(data json.RawMessage) (ast.Expression, error) {
	var n struct {
		Value  json.RawMessage `json:"value"`
		Raw    string          `json:"raw"`
		Regex  *struct {
			Pattern string `json:"pattern"`
			Flags   string `json:"flags"`
		} `json:"regex"`
		Bigint string `json:"bigint"`
	}
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	switch {
	case n.Regex != nil:
		return &ast.RegExpLiteral{Pattern: n.Regex.Pattern, Flags: n.Regex.Flags}, nil
	case n.Bigint != "":
		return &ast.BigIntLiteral{Raw: n.Bigint}, nil
	case string(n.Value) == "null":
		return &ast.NullLiteral{}, nil
	case string(n.Value) == "true" || string(n.Value) == "false":
		return &ast.BooleanLiteral{Value: string(n.Value) == "true"}, nil
	default:
		var s string
		if err := json.Unmarshal(n.Value, &s); err == nil {
			return &ast.StringLiteral{Value: s}, nil
		}
		var f float64
		if err := json.Unmarshal(n.Value, &f); err == nil {
			return &ast.NumericLiteral{Value: f, Raw: n.Raw}, nil
		}
		return nil, fmt.Errorf("astjson: unrecognized literal value %s", n.Value)
	}
}

func variableKind(s string) ast.VariableKind {
	switch s {
	case "let":
		return ast.VarLet
	case "const":
		return ast.VarConst
	default:
		return ast.VarVar
	}
}
