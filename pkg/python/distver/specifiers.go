// Copyright (C) 2026  The Uncertainty Quantification Foundation
//
// SPDX-License-Identifier: BSD-3-Clause

package distver

import (
	"fmt"
	"strings"
)

// Version specifiers
// ==================
//
// A version specifier places constraints on acceptable versions of a
// dependency.  It is a comma-separated list of clauses, each an optional
// comparison operator followed by a version, e.g. ``>=1.0, <1.8.0``.  A
// clause with no operator means exact equality.  All clauses must match for
// the specifier to match.

type VersionSpecifier []VersionSpecifierClause

// ParseVersionSpecifier parses a comma-separated list of comparison clauses.
// The empty string parses to the empty specifier, which matches everything.
func ParseVersionSpecifier(str string) (VersionSpecifier, error) {
	clauseStrs := strings.FieldsFunc(str, func(r rune) bool { return r == ',' })
	ret := make(VersionSpecifier, 0, len(clauseStrs))
	for _, clauseStr := range clauseStrs {
		clause, err := parseVersionSpecifierClause(clauseStr)
		if err != nil {
			return nil, fmt.Errorf("distver.ParseVersionSpecifier: %w", err)
		}
		ret = append(ret, clause)
	}
	return ret, nil
}

// Match returns whether the given version satisfies every clause.
func (spec VersionSpecifier) Match(ver Version) bool {
	for _, clause := range spec {
		if !clause.Match(ver) {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer, rendering the conventional
// ``>=X, <Y`` form.
func (spec VersionSpecifier) String() string {
	strs := make([]string, 0, len(spec))
	for _, clause := range spec {
		strs = append(strs, clause.String())
	}
	return strings.Join(strs, ", ")
}

type CmpOp int

const (
	CmpOpLT CmpOp = iota
	CmpOpGT
	CmpOpLE
	CmpOpGE
	CmpOpEQ
	CmpOpNE
)

func (op CmpOp) String() string {
	str, ok := map[CmpOp]string{
		CmpOpLT: "<",
		CmpOpGT: ">",
		CmpOpLE: "<=",
		CmpOpGE: ">=",
		CmpOpEQ: "==",
		CmpOpNE: "!=",
	}[op]
	if !ok {
		panic(fmt.Errorf("invalid CmpOp: %d", op))
	}
	return str
}

type VersionSpecifierClause struct {
	CmpOp   CmpOp
	Version Version
}

func parseVersionSpecifierClause(str string) (VersionSpecifierClause, error) {
	var ret VersionSpecifierClause
	str = strings.TrimSpace(str)
	switch {
	case strings.HasPrefix(str, "<") && !strings.HasPrefix(str, "<="):
		ret.CmpOp = CmpOpLT
		str = str[1:]
	case strings.HasPrefix(str, ">") && !strings.HasPrefix(str, ">="):
		ret.CmpOp = CmpOpGT
		str = str[1:]
	case strings.HasPrefix(str, "<="):
		ret.CmpOp = CmpOpLE
		str = str[2:]
	case strings.HasPrefix(str, ">="):
		ret.CmpOp = CmpOpGE
		str = str[2:]
	case strings.HasPrefix(str, "=="):
		ret.CmpOp = CmpOpEQ
		str = str[2:]
	case strings.HasPrefix(str, "!="):
		ret.CmpOp = CmpOpNE
		str = str[2:]
	default:
		ret.CmpOp = CmpOpEQ
	}
	ver, err := ParseVersion(str)
	if err != nil {
		return ret, err
	}
	ret.Version = *ver
	return ret, nil
}

// Match returns whether the given version satisfies the clause.
func (spec VersionSpecifierClause) Match(ver Version) bool {
	cmp := ver.Cmp(spec.Version)
	switch spec.CmpOp {
	case CmpOpLT:
		return cmp < 0
	case CmpOpGT:
		return cmp > 0
	case CmpOpLE:
		return cmp <= 0
	case CmpOpGE:
		return cmp >= 0
	case CmpOpEQ:
		return cmp == 0
	case CmpOpNE:
		return cmp != 0
	}
	panic(fmt.Errorf("invalid CmpOp: %d", spec.CmpOp))
}

// String implements fmt.Stringer.
func (spec VersionSpecifierClause) String() string {
	return spec.CmpOp.String() + spec.Version.String()
}
