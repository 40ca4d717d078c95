package semantic

import "github.com/RaphaeleL/ris-sub000/internal/types"

// runtimeCatalog is the fixed set of non-polymorphic runtime functions the
// analyzer preloads into the root scope before analyzing user declarations.
// print/println themselves are not in this table: they are the one
// arity-and-type-polymorphic pair, handled directly in typeOfCall instead
// of through ordinary symbol lookup.
func runtimeCatalog() map[string]types.FunctionType {
	fn := func(ret types.Type, params ...types.Type) types.FunctionType {
		return types.FunctionType{Return: ret, Params: params}
	}
	catalog := map[string]types.FunctionType{
		"ris_malloc":         fn(types.Str, types.Int),
		"ris_free":           fn(types.VoidTy, types.Str),
		"ris_string_concat":  fn(types.Str, types.Str, types.Str),
		"ris_string_length":  fn(types.Int, types.Str),
		"ris_exit":           fn(types.VoidTy, types.Int),
		"ris_println":        fn(types.VoidTy),
	}
	for name, t := range map[string]types.Type{
		"int": types.Int, "float": types.Float, "bool": types.Bool,
		"char": types.Char, "string": types.Str,
	} {
		catalog["ris_print_"+name] = fn(types.VoidTy, t)
		catalog["ris_println_"+name] = fn(types.VoidTy, t)
	}
	return catalog
}

// seedRuntime installs the runtime catalog's function signatures into the
// symbol table's current (root) scope.
func seedRuntime(symbols *SymbolTable) {
	for name, fnType := range runtimeCatalog() {
		symbols.InsertLocal(name, fnType)
	}
}
