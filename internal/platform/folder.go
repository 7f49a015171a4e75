package platform

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"
)

// openTimeout ограничивает время запуска файлового менеджера
const openTimeout = 5 * time.Second

// FolderOpener открывает каталог во внешнем файловом менеджере
type FolderOpener struct {
	// Command переопределяет программу; по умолчанию зависит от ОС
	Command string
}

// FileManagerCommand программа для открытия каталогов на текущей ОС
func FileManagerCommand() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "windows":
		return "explorer"
	default:
		return "xdg-open"
	}
}

// OpenContaining открывает каталог, в котором лежит файл path
func (o FolderOpener) OpenContaining(ctx context.Context, path string) error {
	if path == "" {
		return fmt.Errorf("open folder: empty path")
	}
	dir := filepath.Dir(path)
	if info, err := os.Stat(dir); err != nil {
		return fmt.Errorf("open folder %s: %w", dir, err)
	} else if !info.IsDir() {
		return fmt.Errorf("open folder %s: not a directory", dir)
	}

	name := o.Command
	if name == "" {
		name = FileManagerCommand()
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, openTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, dir)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("open folder %s with %s: %w (%s)", dir, name, err, out)
	}
	return nil
}
