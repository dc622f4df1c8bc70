/*
Package condlang evaluates boolean condition expressions over host-registered
predicates.

# Overview

A condition is a small expression such as

	defined(DEBUG) && !equal(TARGET, wasm)

Every call names an intrinsic: a predicate supplied by the host and invoked
with the hashes of its identifier arguments. Run parses and evaluates in a
single pass and keeps no state between calls. Its working storage is the value
stack passed in by the caller plus a fixed 64-byte operator stack.

# Grammar

	Condition      := Logical EOF
	Logical        := Ternary LogicalRest
	LogicalRest    := '&&' Logical | '||' Logical | ε
	Ternary        := '!' Ternary | Intrinsic
	Intrinsic      := Identifier '(' Parameters ')' | '(' Logical ')'
	Parameters     := Identifier ParametersRest
	ParametersRest := ',' Parameters | ε
	Identifier     := [a-zA-Z_0-9]+

Whitespace (space, tab, CR, LF) may appear between any two tokens.

# Precedence

&& and || share one precedence level and group to the right:

	a() && b() || c()     is    a() && (b() || c())
	a() || b() && c()     is    a() || (b() && c())

Use parentheses when a different grouping is intended.

# Evaluation Order

Intrinsics run in the order they appear in the source. There is no
short-circuiting: in f() || g(), g is called even when f returns true.
When a later part of the expression fails, predicates already called keep
their side effects.

# Identifiers and Hashing

Identifiers are never stored as text. The Hasher turns each one into a
uint32 and predicates see only those hashes through Args. Intrinsic names are
matched by hash as well, so the registry holds hashes, not strings.

# Capacity

Each argument costs 4 bytes on the value stack and each pending result 1
byte. A stack that is too small yields StackOverflow{Stack: ValueStack}.
More than 64 pending operators yields StackOverflow{Stack: OperatorStack},
and nesting deeper than the configured limit (DefaultMaxDepth) yields
StackOverflow{Stack: Nesting}.

# Usage

	h := hash.XXHash{}
	intrinsics := builtin.Intrinsics(h, "DEBUG")

	var stack [128]byte
	ok, err := condlang.Outcome(condlang.Run("defined(DEBUG)", stack[:], intrinsics, h, nil))

Hosts that want logging, metrics and pooled stacks use the engine package.
*/
package condlang
