package i18n

import "golang.org/x/text/feature/plural"

// messages ключ → {английский, русский}
var messages = map[string][2]string{
	"app.name": {"Notepad", "Блокнот"},

	// команды
	"file.new":            {"New", "Создать"},
	"file.open":           {"Open...", "Открыть..."},
	"file.open_path":      {"Open path...", "Открыть по пути..."},
	"file.open_recent":    {"Open recent: %s", "Открыть недавний: %s"},
	"file.clear_recent":   {"Empty Recent Files List", "Очистить список недавних файлов"},
	"file.save":           {"Save", "Сохранить"},
	"file.save_as":        {"Save As...", "Сохранить как..."},
	"file.close":          {"Close", "Закрыть"},
	"file.close_all":      {"Close All", "Закрыть все"},
	"file.reload":         {"Reload", "Перезагрузить"},
	"file.rename":         {"Rename", "Переименовать"},
	"file.open_folder":    {"Open Containing Folder", "Открыть папку с файлом"},
	"app.quit":            {"Exit", "Выход"},
	"edit.undo":           {"Undo", "Отменить"},
	"edit.redo":           {"Redo", "Повторить"},
	"edit.cut":            {"Cut", "Вырезать"},
	"edit.copy":           {"Copy", "Копировать"},
	"edit.paste":          {"Paste", "Вставить"},
	"edit.delete":         {"Delete", "Удалить"},
	"edit.select_all":     {"Select All", "Выделить все"},
	"edit.find":           {"Find...", "Найти..."},
	"edit.find_next":      {"Find Next", "Найти далее"},
	"edit.replace":        {"Replace...", "Заменить..."},
	"edit.goto":           {"Go To...", "Перейти..."},
	"edit.date_time":      {"Time/Date", "Время и дата"},
	"edit.upper":          {"UPPERCASE", "ВЕРХНИЙ РЕГИСТР"},
	"edit.lower":          {"lowercase", "нижний регистр"},
	"edit.title":          {"Title Case", "Каждое Слово С Заглавной"},
	"edit.trim_trailing":  {"Trim Trailing Space", "Удалить конечные пробелы"},
	"edit.trim_leading":   {"Trim Leading Space", "Удалить начальные пробелы"},
	"edit.tabs_to_spaces": {"TAB to Space", "Табуляция в пробелы"},
	"edit.remove_spaces":  {"Remove Spaces", "Удалить пробелы"},
	"edit.join_lines":     {"Join Lines", "Объединить строки"},
	"edit.remove_empty":   {"Remove Empty Lines", "Удалить пустые строки"},
	"edit.remove_dups":    {"Remove Duplicate Lines", "Удалить повторяющиеся строки"},
	"edit.sort_asc":       {"Sort Lines Ascending", "Сортировать строки по возрастанию"},
	"edit.sort_desc":      {"Sort Lines Descending", "Сортировать строки по убыванию"},
	"encoding.set":        {"Encoding: %s", "Кодировка: %s"},
	"encoding.reopen":     {"Reopen with Encoding: %s", "Открыть заново в кодировке: %s"},
	"eol.set":             {"Line Endings: %s", "Перевод строки: %s"},
	"view.zoom_in":        {"Zoom In", "Увеличить"},
	"view.zoom_out":       {"Zoom Out", "Уменьшить"},
	"view.zoom_restore":   {"Restore Default Zoom", "Восстановить масштаб"},
	"view.wrap":           {"Word Wrap", "Перенос по словам"},
	"view.whitespace":     {"Show Spaces and Tabs", "Показывать пробелы и табуляцию"},
	"view.statusbar":      {"Status Bar", "Строка состояния"},
	"view.tabbar":         {"Tab Bar", "Панель вкладок"},
	"view.toolbar":        {"Key Hints", "Подсказки клавиш"},
	"view.menu":           {"Title Line", "Строка заголовка"},
	"view.next_tab":       {"Next Tab", "Следующая вкладка"},
	"view.prev_tab":       {"Previous Tab", "Предыдущая вкладка"},
	"app.command_palette": {"Command Palette", "Палитра команд"},
	"app.options":         {"Options", "Параметры"},
	"app.summary":         {"Summary", "Информация о файле"},
	"app.help":            {"Help", "Справка"},
	"app.about":           {"About Notepad", "О программе"},
	"app.language":        {"Language: %s", "Язык: %s"},

	// диалоги
	"dialog.ok":             {"Ok", "Ок"},
	"dialog.cancel":         {"Cancel", "Отмена"},
	"dialog.save":           {"Save", "Сохранить"},
	"dialog.discard":        {"Discard", "Нет"},
	"dialog.yes":            {"Yes", "Да"},
	"dialog.no":             {"No", "Нет"},
	"dialog.maybe_save":     {"The document has been modified.\nDo you want to save your changes?", "Документ был изменен.\nХотите сохранить изменения?"},
	"dialog.reload_confirm": {"Reloading discards unsaved changes in %s. Continue?", "Перезагрузка отменит несохраненные изменения в %s. Продолжить?"},
	"dialog.required":       {"Please enter a value", "Введите значение"},
	"dialog.overwrite":      {"%s already exists.\nDo you want to replace it?", "%s уже существует.\nЗаменить его?"},
	"dialog.goto_title":     {"Go To Line", "Переход на строку"},
	"dialog.goto_label":     {"Line number:", "Номер строки:"},
	"dialog.rename_title":   {"Rename Current File:", "Переименовать текущий файл:"},
	"dialog.rename_label":   {"New Name:", "Новое имя:"},
	"dialog.save_title":     {"Save File", "Сохранить файл"},
	"dialog.open_title":     {"Open File", "Открыть файл"},
	"dialog.path_label":     {"File path:", "Путь к файлу:"},
	"dialog.colour_title":   {"Colour", "Цвет"},
	"dialog.colour_label":   {"Colour (#rrggbb):", "Цвет (#rrggbb):"},
	"dialog.font_title":     {"Font", "Шрифт"},
	"dialog.font_label":     {"Font family:", "Семейство шрифта:"},

	// поиск
	"find.title":        {"Find", "Найти"},
	"find.replace":      {"Replace", "Заменить"},
	"find.what":         {"Find what:", "Что:"},
	"find.with":         {"Replace with:", "Чем:"},
	"find.case":         {"Match case", "С учетом регистра"},
	"find.whole":        {"Whole word", "Слово целиком"},
	"find.wrap":         {"Wrap around", "Обтекание текста"},
	"find.next":         {"Find Next", "Найти далее"},
	"find.replace_one":  {"Replace", "Заменить"},
	"find.replace_all":  {"Replace All", "Заменить все"},
	"find.not_found":    {"Cannot find text:\n'%s'", "Не удается найти:\n'%s'"},
	"find.hint":         {"Tab: next field  Enter/F3: find  Alt+R: replace  Alt+A: replace all  Alt+C/B/O: options  Esc: close", "Tab: след. поле  Enter/F3: найти  Alt+R: заменить  Alt+A: заменить все  Alt+C/B/O: параметры  Esc: закрыть"},
	"find.invalid_line": {"Invalid line number", "Неверный номер строки"},

	// сообщения
	"msg.file_open":       {"The file is open", "Файл открыт"},
	"msg.already_open":    {"The file is already opened in Notepad", "Файл уже открыт в Notepad"},
	"msg.cannot_read":     {"Cannot read file %s:\n%v.", "Невозможно прочитать файл %s:\n%v."},
	"msg.cannot_write":    {"Cannot write file %s:\n%v.", "Невозможно записать файл %s:\n%v."},
	"msg.cannot_rename":   {"Cannot rename file %s:\n%v.", "Невозможно переименовать файл %s:\n%v."},
	"msg.cannot_reload":   {"Cannot reload file %s:\n%v.", "Невозможно перезагрузить файл %s:\n%v."},
	"msg.cannot_folder":   {"Cannot open folder:\n%v.", "Невозможно открыть папку:\n%v."},
	"msg.file_saved":      {"File saved", "Файл сохранен"},
	"msg.reloaded":        {"Reloaded %s (%s)", "Перезагружен %s (%s)"},
	"msg.unchanged":       {"no changes", "без изменений"},
	"msg.changed_on_disk": {"%s was %s on disk. Use Reload to update.", "%s: файл %s на диске. Используйте «Перезагрузить»."},
	"msg.clipboard":       {"Clipboard unavailable: %v", "Буфер обмена недоступен: %v"},
	"msg.no_path":         {"The document has not been saved yet", "Документ еще не сохранен"},
	"msg.error":           {"Error: %v", "Ошибка: %v"},
	"msg.about":           {"Notepad for the terminal.\nPlain text editing with tabs, encodings and line endings.", "Блокнот для терминала.\nРедактирование текста с вкладками, кодировками и переводами строк."},

	// файловые операции для сообщений наблюдателя
	"op.created":  {"created", "создан"},
	"op.modified": {"modified", "изменен"},
	"op.deleted":  {"deleted", "удален"},
	"op.renamed":  {"renamed", "переименован"},

	// информация о файле
	"summary.chars":    {"Characters(without line endings): %d", "Символов(без окончания строки): %d"},
	"summary.words":    {"Words: %d", "Слов: %d"},
	"summary.lines":    {"Lines: %d", "Строк: %d"},
	"summary.length":   {"Document length: %d", "Длина: %d"},
	"summary.sel":      {"%d selected characters (%d bytes) %s", "Выделено символов: %d (байт: %d) %s"},
	"summary.path":     {"Full file path: %s", "Полный путь к файлу: %s"},
	"summary.modified": {"Modified: %s", "Изменен: %s"},

	// строка состояния
	"status.length": {"Length: %d", "Длина: %d"},
	"status.pos":    {"Ln: %d Col: %d", "Стр: %d Стлб: %d"},
	"status.zoom":   {"Zoom: %d%%", "Масштаб: %d%%"},

	// экран параметров
	"options.title":       {"Options", "Параметры"},
	"options.theme":       {"Theme", "Тема"},
	"options.language":    {"Language", "Язык"},
	"options.menu":        {"Show title line", "Строка заголовка"},
	"options.statusbar":   {"Show status bar", "Строка состояния"},
	"options.tabbar":      {"Show tab bar", "Панель вкладок"},
	"options.vertical":    {"Vertical tab bar", "Вертикальная панель вкладок"},
	"options.close_btn":   {"Tab close button", "Кнопка закрытия вкладки"},
	"options.toolbar":     {"Show key hints", "Подсказки клавиш"},
	"options.wrap":        {"Word wrap", "Перенос по словам"},
	"options.whitespace":  {"Show spaces and tabs", "Пробелы и табуляция"},
	"options.font_family": {"Font family", "Шрифт"},
	"options.font_size":   {"Font size", "Размер шрифта"},
	"options.bold":        {"Bold", "Жирный"},
	"options.italic":      {"Italic", "Курсив"},
	"options.reset":       {"Reset colours", "Сбросить цвета"},
	"options.on":          {"on", "вкл"},
	"options.off":         {"off", "выкл"},
	"options.hint":        {"↑/↓: select  ←/→/Enter: change  Esc: back", "↑/↓: выбор  ←/→/Enter: изменить  Esc: назад"},

	"colour.text":              {"Text colour", "Цвет текста"},
	"colour.background":        {"Background colour", "Цвет фона"},
	"colour.current_line":      {"Current line colour", "Цвет текущей строки"},
	"colour.gutter_text":       {"Line numbers colour", "Цвет номеров строк"},
	"colour.gutter_background": {"Line numbers background", "Фон номеров строк"},

	// экран открытия
	"open.title":  {"Open File", "Открыть файл"},
	"open.hint":   {"Enter: open  Backspace: up  .: hidden files  t: *.txt only  p: type path  Esc: back", "Enter: открыть  Backspace: вверх  .: скрытые  t: только *.txt  p: ввести путь  Esc: назад"},
	"open.empty":  {"(empty)", "(пусто)"},
	"open.filter": {"Text Files (*.txt)", "Текстовые файлы (*.txt)"},
	"open.all":    {"All Files (*)", "Все файлы (*)"},

	// палитра и справка
	"palette.filter": {"Filter commands", "Фильтр команд"},
	"palette.none":   {"No commands match filter", "Нет подходящих команд"},
	"help.title":     {"Help", "Справка"},
	"help.keys":      {"Key bindings", "Горячие клавиши"},
	"help.hint":      {"↑/↓: scroll  Esc: back", "↑/↓: прокрутка  Esc: назад"},
	"hints.dialog":   {"Enter: confirm  Esc: cancel", "Enter: подтвердить  Esc: отмена"},

	"hints.save_prompt": {"s/Enter: save  d: discard  Esc: cancel", "s/Enter: сохранить  d: не сохранять  Esc: отмена"},
}

// plurals ключ → формы {английские, русские} для plural.Selectf по первому аргументу
var plurals = map[string][2][]any{
	"find.replaced": {
		{
			plural.One, "Replaced %d occurrence",
			plural.Other, "Replaced %d occurrences",
		},
		{
			plural.One, "Заменено %d вхождение",
			plural.Few, "Заменено %d вхождения",
			plural.Many, "Заменено %d вхождений",
			plural.Other, "Заменено %d вхождения",
		},
	},
	"summary.ranges": {
		{
			plural.One, "in %d range",
			plural.Other, "in %d ranges",
		},
		{
			plural.One, "в %d диапазоне",
			plural.Other, "в %d диапазонах",
		},
	},
}
