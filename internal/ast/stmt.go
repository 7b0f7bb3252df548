package ast

import (
	"fanc/internal/source"
	"fanc/internal/types"
)

type StmtKind uint8

const (
	StmtBlock StmtKind = iota
	StmtVarDecl
	StmtAssign
	StmtCall
	StmtReturn
	StmtIf
	StmtWhile
	StmtBreak
	StmtContinue
)

func (k StmtKind) String() string {
	switch k {
	case StmtBlock:
		return "Block"
	case StmtVarDecl:
		return "VarDecl"
	case StmtAssign:
		return "Assign"
	case StmtCall:
		return "Call"
	case StmtReturn:
		return "Return"
	case StmtIf:
		return "If"
	case StmtWhile:
		return "While"
	case StmtBreak:
		return "Break"
	case StmtContinue:
		return "Continue"
	}
	return "StmtKind(?)"
}

// Stmt is the tagged header; Break and Continue carry no payload.
type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Line    uint32
	Payload PayloadID
}

type StmtBlockData struct {
	Stmts []StmtID
}

type StmtVarDeclData struct {
	Type types.Type
	Name source.StringID
	Init ExprID // NoExprID when absent
}

type StmtAssignData struct {
	Name  source.StringID
	Value ExprID
}

type StmtCallData struct {
	Call ExprID
}

type StmtReturnData struct {
	Value ExprID // NoExprID for a bare return
}

type StmtIfData struct {
	Cond ExprID
	Then StmtID
	Else StmtID // NoStmtID when absent
}

type StmtWhileData struct {
	Cond ExprID
	Body StmtID
}

// Stmts manages allocation of statements.
type Stmts struct {
	Arena    *Arena[Stmt]
	Blocks   *Arena[StmtBlockData]
	VarDecls *Arena[StmtVarDeclData]
	Assigns  *Arena[StmtAssignData]
	Calls    *Arena[StmtCallData]
	Returns  *Arena[StmtReturnData]
	Ifs      *Arena[StmtIfData]
	Whiles   *Arena[StmtWhileData]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 7
	}
	return &Stmts{
		Arena:    NewArena[Stmt](capHint),
		Blocks:   NewArena[StmtBlockData](capHint),
		VarDecls: NewArena[StmtVarDeclData](capHint),
		Assigns:  NewArena[StmtAssignData](capHint),
		Calls:    NewArena[StmtCallData](capHint),
		Returns:  NewArena[StmtReturnData](capHint),
		Ifs:      NewArena[StmtIfData](capHint),
		Whiles:   NewArena[StmtWhileData](capHint),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, line uint32, payload uint32) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{Kind: kind, Span: span, Line: line, Payload: PayloadID(payload)}))
}

func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

func (s *Stmts) NewBlock(span source.Span, line uint32, stmts []StmtID) StmtID {
	return s.new(StmtBlock, span, line, s.Blocks.Allocate(StmtBlockData{Stmts: stmts}))
}

func (s *Stmts) Block(id StmtID) *StmtBlockData {
	if st := s.Get(id); st != nil && st.Kind == StmtBlock {
		return s.Blocks.Get(uint32(st.Payload))
	}
	return nil
}

func (s *Stmts) NewVarDecl(span source.Span, line uint32, typ types.Type, name source.StringID, init ExprID) StmtID {
	return s.new(StmtVarDecl, span, line, s.VarDecls.Allocate(StmtVarDeclData{Type: typ, Name: name, Init: init}))
}

func (s *Stmts) VarDecl(id StmtID) *StmtVarDeclData {
	if st := s.Get(id); st != nil && st.Kind == StmtVarDecl {
		return s.VarDecls.Get(uint32(st.Payload))
	}
	return nil
}

func (s *Stmts) NewAssign(span source.Span, line uint32, name source.StringID, value ExprID) StmtID {
	return s.new(StmtAssign, span, line, s.Assigns.Allocate(StmtAssignData{Name: name, Value: value}))
}

func (s *Stmts) Assign(id StmtID) *StmtAssignData {
	if st := s.Get(id); st != nil && st.Kind == StmtAssign {
		return s.Assigns.Get(uint32(st.Payload))
	}
	return nil
}

func (s *Stmts) NewCall(span source.Span, line uint32, call ExprID) StmtID {
	return s.new(StmtCall, span, line, s.Calls.Allocate(StmtCallData{Call: call}))
}

func (s *Stmts) Call(id StmtID) *StmtCallData {
	if st := s.Get(id); st != nil && st.Kind == StmtCall {
		return s.Calls.Get(uint32(st.Payload))
	}
	return nil
}

func (s *Stmts) NewReturn(span source.Span, line uint32, value ExprID) StmtID {
	return s.new(StmtReturn, span, line, s.Returns.Allocate(StmtReturnData{Value: value}))
}

func (s *Stmts) Return(id StmtID) *StmtReturnData {
	if st := s.Get(id); st != nil && st.Kind == StmtReturn {
		return s.Returns.Get(uint32(st.Payload))
	}
	return nil
}

func (s *Stmts) NewIf(span source.Span, line uint32, cond ExprID, then, els StmtID) StmtID {
	return s.new(StmtIf, span, line, s.Ifs.Allocate(StmtIfData{Cond: cond, Then: then, Else: els}))
}

func (s *Stmts) If(id StmtID) *StmtIfData {
	if st := s.Get(id); st != nil && st.Kind == StmtIf {
		return s.Ifs.Get(uint32(st.Payload))
	}
	return nil
}

func (s *Stmts) NewWhile(span source.Span, line uint32, cond ExprID, body StmtID) StmtID {
	return s.new(StmtWhile, span, line, s.Whiles.Allocate(StmtWhileData{Cond: cond, Body: body}))
}

func (s *Stmts) While(id StmtID) *StmtWhileData {
	if st := s.Get(id); st != nil && st.Kind == StmtWhile {
		return s.Whiles.Get(uint32(st.Payload))
	}
	return nil
}

func (s *Stmts) NewBreak(span source.Span, line uint32) StmtID {
	return s.new(StmtBreak, span, line, 0)
}

func (s *Stmts) NewContinue(span source.Span, line uint32) StmtID {
	return s.new(StmtContinue, span, line, 0)
}
