package translate

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// catalog maps en-US formats to their pt-BR counterparts.
var catalog = map[string]string{
	// Log entries
	"simulator ready":                             "Simulador pronto.",
	"simulator cleared and ready":                 "Simulador limpo e pronto.",
	"PUSH %v":                                     "PUSH %v",
	"POP %v":                                      "POP %v",
	"%v: %v %v %v = %v. Result %v on the stack.": "%v: %v %v %v = %v. Resultado %v na pilha.",
	"ERROR: %v":                                   "ERRO: %v",

	// Machine errors
	"invalid value for PUSH: %q":     "Valor inválido para PUSH: %q",
	"stack empty, cannot %v":         "Pilha vazia, não é possível fazer %v",
	"stack needs %d operands for %v": "Pilha precisa de %d operandos para %v",
	"division by zero":               "Divisão por zero",
	"result of %v is not a number":   "Resultado de %v não é um número",
	"%v is not an arithmetic op":     "%v não é uma operação aritmética",

	// Views
	"(empty stack)": "Pilha vazia",
	"TOP":           "TOPO",

	// Session
	"unknown command %q":    "comando desconhecido %q",
	"line %d %v":            "linha %d %v",
	"available commands:":   "comandos disponíveis:",
	"%v takes no arguments": "%v não aceita argumentos",

	// Scripts
	".equ syntax":                 "sintaxe de .equ",
	".equ duplicated":             ".equ duplicado",
	".macro syntax":               "sintaxe de .macro",
	".macro in .macro prohibited": ".macro dentro de .macro proibido",
	".macro duplicated":           ".macro duplicado",
	".macro without .endm":        ".macro sem .endm",
	".endm without .macro":        ".endm sem .macro",
	"excessive arguments":         "argumentos em excesso",
	"operand missing":             "operando ausente",
	"line %d '%v' %v":             "linha %d '%v' %v",
	"macro %v line %v %v":         "macro %v linha %v %v",

	// Console
	"unsupported operator %q": "operador não suportado %q",
}

func register() {
	for key, text := range catalog {
		message.SetString(language.AmericanEnglish, key, key)
		message.SetString(language.BrazilianPortuguese, key, text)
	}
}
