package ast

type (
	FuncID    uint32
	StmtID    uint32
	ExprID    uint32
	PayloadID uint32
)

const (
	NoFuncID    FuncID    = 0
	NoStmtID    StmtID    = 0
	NoExprID    ExprID    = 0
	NoPayloadID PayloadID = 0
)

func (id FuncID) IsValid() bool    { return id != NoFuncID }
func (id StmtID) IsValid() bool    { return id != NoStmtID }
func (id ExprID) IsValid() bool    { return id != NoExprID }
func (id PayloadID) IsValid() bool { return id != NoPayloadID }
