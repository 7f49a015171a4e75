package fs

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher следит за изменениями открытых файлов
type FileWatcher struct {
	watcher    *fsnotify.Watcher
	files      map[string]struct{} // отслеживаемые файлы
	dirs       map[string]int      // каталоги и число файлов в них
	suppressed map[string]time.Time
	events     chan FileChangeEvent
	errors     chan error
	mu         sync.RWMutex
	ctx        context.Context
	cancel     context.CancelFunc
	now        func() time.Time
}

// FileChangeEvent событие изменения файла
type FileChangeEvent struct {
	Path      string        // Путь к файлу
	Operation FileOperation // Тип операции
}

// FileOperation тип операции с файлом
type FileOperation int

const (
	FileCreated FileOperation = iota
	FileModified
	FileDeleted
	FileRenamed
)

// SuppressWindow время, в течение которого игнорируются события после собственной записи
const SuppressWindow = time.Second

// NewFileWatcher создает новый наблюдатель за файлами
func NewFileWatcher(ctx context.Context) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)

	fw := &FileWatcher{
		watcher:    watcher,
		files:      make(map[string]struct{}),
		dirs:       make(map[string]int),
		suppressed: make(map[string]time.Time),
		events:     make(chan FileChangeEvent, 16),
		errors:     make(chan error, 4),
		ctx:        ctx,
		cancel:     cancel,
		now:        time.Now,
	}

	go fw.watchLoop()

	return fw, nil
}

// Events канал событий по отслеживаемым файлам
func (fw *FileWatcher) Events() <-chan FileChangeEvent {
	return fw.events
}

// Errors канал ошибок fsnotify
func (fw *FileWatcher) Errors() <-chan error {
	return fw.errors
}

// Watch начинает наблюдение за файлом. Наблюдается его каталог, чтобы
// замечать запись через переименование временного файла.
func (fw *FileWatcher) Watch(path string) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	path = filepath.Clean(path)
	if _, ok := fw.files[path]; ok {
		return nil
	}
	dir := filepath.Dir(path)
	if fw.dirs[dir] == 0 {
		if err := fw.watcher.Add(dir); err != nil {
			return err
		}
	}
	fw.dirs[dir]++
	fw.files[path] = struct{}{}
	return nil
}

// Unwatch прекращает наблюдение за файлом
func (fw *FileWatcher) Unwatch(path string) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	path = filepath.Clean(path)
	if _, ok := fw.files[path]; !ok {
		return nil
	}
	delete(fw.files, path)
	delete(fw.suppressed, path)
	dir := filepath.Dir(path)
	fw.dirs[dir]--
	if fw.dirs[dir] > 0 {
		return nil
	}
	delete(fw.dirs, dir)
	return fw.watcher.Remove(dir)
}

// Watched отслеживается ли файл
func (fw *FileWatcher) Watched(path string) bool {
	fw.mu.RLock()
	defer fw.mu.RUnlock()
	_, ok := fw.files[filepath.Clean(path)]
	return ok
}

// Suppress игнорирует события файла в течение SuppressWindow
func (fw *FileWatcher) Suppress(path string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	fw.suppressed[filepath.Clean(path)] = fw.now().Add(SuppressWindow)
}

// Close закрывает наблюдатель
func (fw *FileWatcher) Close() error {
	fw.cancel()
	return fw.watcher.Close()
}

// watchLoop главный цикл наблюдения
func (fw *FileWatcher) watchLoop() {
	for {
		select {
		case <-fw.ctx.Done():
			return
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			fw.handleEvent(event)
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			select {
			case fw.errors <- err:
			default:
			}
		}
	}
}

// handleEvent пересылает событие, если файл отслеживается и не подавлен
func (fw *FileWatcher) handleEvent(event fsnotify.Event) {
	if event.Op == fsnotify.Chmod {
		return
	}
	change, ok := fw.filter(event)
	if !ok {
		return
	}
	select {
	case fw.events <- change:
	case <-fw.ctx.Done():
	}
}

func (fw *FileWatcher) filter(event fsnotify.Event) (FileChangeEvent, bool) {
	path := filepath.Clean(event.Name)

	fw.mu.Lock()
	defer fw.mu.Unlock()

	if _, ok := fw.files[path]; !ok {
		return FileChangeEvent{}, false
	}
	if until, ok := fw.suppressed[path]; ok {
		if fw.now().Before(until) {
			return FileChangeEvent{}, false
		}
		delete(fw.suppressed, path)
	}
	return convertEvent(event), true
}

// convertEvent конвертирует fsnotify.Event в FileChangeEvent
func convertEvent(event fsnotify.Event) FileChangeEvent {
	var operation FileOperation

	switch {
	case event.Op&fsnotify.Create == fsnotify.Create:
		operation = FileCreated
	case event.Op&fsnotify.Write == fsnotify.Write:
		operation = FileModified
	case event.Op&fsnotify.Remove == fsnotify.Remove:
		operation = FileDeleted
	case event.Op&fsnotify.Rename == fsnotify.Rename:
		operation = FileRenamed
	default:
		operation = FileModified
	}

	return FileChangeEvent{
		Path:      filepath.Clean(event.Name),
		Operation: operation,
	}
}

// String возвращает строковое представление операции
func (op FileOperation) String() string {
	switch op {
	case FileCreated:
		return "created"
	case FileModified:
		return "modified"
	case FileDeleted:
		return "deleted"
	case FileRenamed:
		return "renamed"
	default:
		return "unknown"
	}
}
