// Package commands árbol de comandos cobra de la CLI weinrechner.
package commands
