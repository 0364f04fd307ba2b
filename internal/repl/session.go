// Package repl wires the parser, clausifier and resolver together into
// the interactive session the CLI exposes: loading .gic files, listing
// the current program, and running queries with cooperative,
// prompt-driven answer enumeration.
package repl

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/LucasGrasso/gic/assets"
	"github.com/LucasGrasso/gic/internal/ast"
	"github.com/LucasGrasso/gic/internal/clause"
	"github.com/LucasGrasso/gic/internal/gicerr"
	"github.com/LucasGrasso/gic/internal/parser"
)

// Session holds the running knowledge base across load/query commands.
type Session struct {
	clausifier *clause.Clausifier
	libraryEnd int
	log        *logrus.Logger
}

// New returns an empty Session.
func New(log *logrus.Logger) *Session {
	if log == nil {
		log = logrus.New()
	}
	return &Session{clausifier: clause.New(), log: log}
}

// LoadLibrary loads the bundled list-predicate library and records the
// clause-count boundary so Program() can report only user-loaded
// clauses afterward.
func (s *Session) LoadLibrary() error {
	if err := s.loadSource(assets.ListsLibrary, "<bundled list library>"); err != nil {
		return err
	}
	s.libraryEnd = s.clausifier.Len()
	s.log.WithField("clauses", s.libraryEnd).Debug("loaded bundled list library")
	return nil
}

// LoadFile reads and clausifies a .gic knowledge-base file, appending its
// clauses to the running program.
func (s *Session) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return gicerr.Wrap(gicerr.KindParse, err, "reading %s", path)
	}
	before := s.clausifier.Len()
	if err := s.loadSource(string(data), path); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{
		"file":    path,
		"clauses": s.clausifier.Len() - before,
	}).Debug("loaded knowledge base file")
	return nil
}

func (s *Session) loadSource(src, label string) error {
	exprs, err := parser.ParseClauses(src)
	if err != nil {
		return gicerr.Wrap(gicerr.KindParse, err, "parsing %s", label)
	}
	// A formula that fails to clausify is skipped; the remaining formulas
	// still load and the first such error is returned once all are tried.
	var firstErr error
	for _, e := range exprs {
		if err := s.clausifier.Add(clause.Quantify(e)); err != nil && firstErr == nil {
			firstErr = gicerr.Wrap(gicerr.KindClause, err, "clausifying a formula from %s", label)
		}
	}
	return firstErr
}

// Program returns the clauses loaded by the user, excluding the bundled
// library, in load order.
func (s *Session) Program() []ast.Clause {
	return s.clausifier.SliceFrom(s.libraryEnd)
}

// FullProgram returns every clause currently known, library included —
// what the resolver actually searches.
func (s *Session) FullProgram() ast.Program {
	return s.clausifier.Program()
}
