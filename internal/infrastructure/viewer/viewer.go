// Package viewer abre documentos con el visor predeterminado del sistema.
package viewer

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Open lanza el visor del sistema para la ruta dada. No espera a que el
// visor termine; el proceso queda desacoplado del CLI.
func Open(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("abrir %s: %w", path, err)
	}
	return nil
}
