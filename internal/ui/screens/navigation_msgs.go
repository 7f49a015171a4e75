package screens

// BackMsg просит приложение вернуться к предыдущему экрану
type BackMsg struct{}

// OpenFileMsg просит приложение открыть файл во вкладке
type OpenFileMsg struct {
	Path string
}

// SettingsChangedMsg настройки изменены на экране параметров и должны быть применены
type SettingsChangedMsg struct{}

// CloseTabMsg запрос на закрытие вкладки, например щелчком по кнопке закрытия
type CloseTabMsg struct {
	Index int
}
