//go:build js && wasm

package main

import (
	"syscall/js"

	"monkey/colors"
	"monkey/internal/config"
	"monkey/internal/driver"
)

func main() {
	colors.SetEnabled(false)
	js.Global().Set("monkeyParse", js.FuncOf(parse))
	js.Global().Set("monkeyWasmVersion", "0.1.0")
	println("Monkey WASM parser ready")
	<-make(chan struct{})
}

// parse is called from JavaScript as monkeyParse(code, format, tokens).
func parse(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return map[string]any{
			"success": false,
			"output":  "Invalid arguments: expected (code: string, format?: string, tokens?: bool)",
		}
	}

	opts := &driver.Options{
		Name:   "playground",
		Code:   args[0].String(),
		Mode:   config.ModeParse,
		Format: config.FormatText,
	}
	if len(args) > 1 && args[1].Type() == js.TypeString {
		opts.Format = args[1].String()
	}
	if len(args) > 2 && args[2].Truthy() {
		opts.Mode = config.ModeTokens
	}

	result := driver.Run(opts)

	return map[string]any{
		"success":     result.Success,
		"output":      result.Output,
		"diagnostics": result.Diagnostics,
	}
}
