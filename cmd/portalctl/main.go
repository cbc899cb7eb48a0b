// Package main CLI del portal de clientes: inicia sesión contra la API e
// imprime los reportes PDF en disco.
package main

func main() {
	Execute()
}
