package settings

// MaxRecentFiles размер списка недавних файлов
const MaxRecentFiles = 5

// RecentFiles список недавно открытых файлов, самый свежий первым
type RecentFiles struct {
	paths []string
	max   int
}

// NewRecentFiles создает пустой список с ограничением размера
func NewRecentFiles(max int) *RecentFiles {
	if max < 1 {
		max = MaxRecentFiles
	}
	return &RecentFiles{max: max}
}

// Add помещает путь в начало списка, убирая повтор и лишние записи
func (r *RecentFiles) Add(path string) {
	if path == "" {
		return
	}
	list := make([]string, 0, r.max)
	list = append(list, path)
	for _, p := range r.paths {
		if p == path {
			continue
		}
		if len(list) == r.max {
			break
		}
		list = append(list, p)
	}
	r.paths = list
}

// Remove удаляет путь из списка
func (r *RecentFiles) Remove(path string) {
	for i, p := range r.paths {
		if p == path {
			r.paths = append(r.paths[:i:i], r.paths[i+1:]...)
			return
		}
	}
}

// Clear очищает список
func (r *RecentFiles) Clear() {
	r.paths = nil
}

// List копия списка
func (r *RecentFiles) List() []string {
	return append([]string(nil), r.paths...)
}

// Len количество записей
func (r *RecentFiles) Len() int {
	return len(r.paths)
}

// set заполняет список из сохраненных значений, сохраняя порядок
func (r *RecentFiles) set(paths []string) {
	r.paths = nil
	for i := len(paths) - 1; i >= 0; i-- {
		r.Add(paths[i])
	}
}
