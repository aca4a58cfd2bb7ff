// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stack Programming Community

package interp

// builtins is the operator dispatch table. Every operator pops its
// operands off the shared data stack, rightmost operand first, coercing
// through the value package's matrix.
var builtins = map[string]func(*Executor){
	// Arithmetic
	"add":   (*Executor).opAdd,
	"sub":   (*Executor).opSub,
	"mul":   (*Executor).opMul,
	"div":   (*Executor).opDiv,
	"mod":   (*Executor).opMod,
	"pow":   (*Executor).opPow,
	"round": (*Executor).opRound,
	"sin":   (*Executor).opSin,
	"cos":   (*Executor).opCos,
	"tan":   (*Executor).opTan,

	// Logic and comparison
	"and":   (*Executor).opAnd,
	"or":    (*Executor).opOr,
	"not":   (*Executor).opNot,
	"equal": (*Executor).opEqual,
	"less":  (*Executor).opLess,

	// Strings
	"repeat":  (*Executor).opRepeat,
	"decode":  (*Executor).opDecode,
	"encode":  (*Executor).opEncode,
	"concat":  (*Executor).opConcat,
	"replace": (*Executor).opReplace,
	"split":   (*Executor).opSplit,
	"case":    (*Executor).opCase,
	"join":    (*Executor).opJoin,
	"find":    (*Executor).opFind,
	"regex":   (*Executor).opRegex,

	// I/O
	"write-file":  (*Executor).opWriteFile,
	"read-file":   (*Executor).opReadFile,
	"read-binary": (*Executor).opReadBinary,
	"input":       (*Executor).opInput,
	"print":       (*Executor).opPrint,
	"println":     (*Executor).opPrintln,
	"args-cmd":    (*Executor).opArgsCmd,

	// Control
	"eval":   (*Executor).opEval,
	"if":     (*Executor).opIf,
	"while":  (*Executor).opWhile,
	"thread": (*Executor).opThread,
	"exit":   (*Executor).opExit,

	// Lists
	"get":     (*Executor).opGet,
	"set":     (*Executor).opSet,
	"del":     (*Executor).opDel,
	"append":  (*Executor).opAppend,
	"insert":  (*Executor).opInsert,
	"index":   (*Executor).opIndex,
	"sort":    (*Executor).opSort,
	"reverse": (*Executor).opReverse,
	"for":     (*Executor).opFor,
	"range":   (*Executor).opRange,
	"len":     (*Executor).opLen,
	"rand":    (*Executor).opRand,
	"shuffle": (*Executor).opShuffle,

	// Functional combinators
	"map":    (*Executor).opMap,
	"filter": (*Executor).opFilter,
	"reduce": (*Executor).opReduce,

	// Stack and memory
	"pop":        (*Executor).opPop,
	"size-stack": (*Executor).opSizeStack,
	"var":        (*Executor).opVar,
	"type":       (*Executor).opType,
	"cast":       (*Executor).opCast,
	"mem":        (*Executor).opMem,
	"free":       (*Executor).opFree,
	"copy":       (*Executor).opCopy,
	"swap":       (*Executor).opSwap,

	// Time
	"now-time": (*Executor).opNowTime,
	"sleep":    (*Executor).opSleep,

	// Objects
	"instance": (*Executor).opInstance,
	"property": (*Executor).opProperty,
	"method":   (*Executor).opMethod,
	"modify":   (*Executor).opModify,
	"all":      (*Executor).opAll,

	// System, JSON, SQL, templating, server
	"sys-info":     (*Executor).opSysInfo,
	"get-json":     (*Executor).opGetJSON,
	"set-json":     (*Executor).opSetJSON,
	"sql":          (*Executor).opSQL,
	"template":     (*Executor).opTemplate,
	"start-server": (*Executor).opStartServer,
}
