package main

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/analysis/singlechecker"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

const doc = `classgenlint checks for forbidden function calls

This analyzer reports:
1. Usage of panic() function
2. Calls to log.Fatal*() or os.Exit() outside main function of main package
3. Calls to package-level math/rand functions, random draws must use an explicit source`

var Analyzer = &analysis.Analyzer{
	Name:     "classgenlint",
	Doc:      doc,
	Run:      run,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
}

// Конструкторы генераторов разрешены, общий источник - нет
var allowedRand = map[string]bool{
	"New":        true,
	"NewSource":  true,
	"NewZipf":    true,
	"NewPCG":     true,
	"NewChaCha8": true,
}

func main() {
	singlechecker.Main(Analyzer)
}

func run(pass *analysis.Pass) (interface{}, error) {
	inspector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
	}

	inspector.Preorder(nodeFilter, func(node ast.Node) {
		callExpr := node.(*ast.CallExpr)

		switch callee := typeutil.Callee(pass.TypesInfo, callExpr).(type) {
		case *types.Builtin:
			if callee.Name() == "panic" {
				pass.Reportf(callExpr.Pos(), "panic() should not be used in generator code")
			}
		case *types.Func:
			checkFunc(pass, callExpr, callee)
		}
	})

	return nil, nil
}

func checkFunc(pass *analysis.Pass, callExpr *ast.CallExpr, fn *types.Func) {
	if fn.Pkg() == nil {
		return
	}
	// методы (*rand.Rand).Intn и т.п. не интересны
	if sig, ok := fn.Type().(*types.Signature); ok && sig.Recv() != nil {
		return
	}

	name := fn.Name()

	switch fn.Pkg().Path() {
	case "log":
		if strings.HasPrefix(name, "Fatal") && !isInMainFunction(pass, callExpr) {
			pass.Reportf(callExpr.Pos(), "log.%s() should only be called from main function in main package", name)
		}
	case "os":
		if name == "Exit" && !isInMainFunction(pass, callExpr) {
			pass.Reportf(callExpr.Pos(), "os.Exit() should only be called from main function in main package")
		}
	case "math/rand", "math/rand/v2":
		if !allowedRand[name] {
			pass.Reportf(callExpr.Pos(), "rand.%s uses the global random source, draw through chooser.Source", name)
		}
	}
}

func isInMainFunction(pass *analysis.Pass, node ast.Node) bool {
	if pass.Pkg.Name() != "main" {
		return false
	}

	for _, file := range pass.Files {
		for _, decl := range file.Decls {
			if fn, ok := decl.(*ast.FuncDecl); ok && fn.Name.Name == "main" && fn.Recv == nil && fn.Body != nil {
				if node.Pos() >= fn.Body.Lbrace && node.Pos() <= fn.Body.Rbrace {
					return true
				}
			}
		}
	}
	return false
}
