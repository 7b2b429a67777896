package ui

import (
	"sort"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle            = "app_title"
	KeyFetchVideos         = "fetch_videos"
	KeySearchVideos        = "search_videos"
	KeyCreatePlaylist      = "create_playlist"
	KeyAddToPlaylist       = "add_to_playlist"
	KeyRemoveFromPlaylist  = "remove_from_playlist"
	KeyDisplayPlaylist     = "display_playlist"
	KeyDisplayAllPlaylists = "display_all_playlists"
	KeyNextPage            = "next_page"
	KeyPrevPage            = "prev_page"
	KeySavePlaylists       = "save_playlists"
	KeyDeletePlaylist      = "delete_playlist"
	KeyImportYouTube       = "import_youtube"
	KeyExit                = "exit"
	KeyPageFormat          = "page_format"
	KeySettings            = "settings"
	KeyFile                = "file"
	KeyLanguage            = "language"
	KeyRevealDataFile      = "reveal_data_file"
	KeyAPIBaseURL          = "api_base_url"
	KeyDataFile            = "data_file"
	KeyRequestTimeout      = "request_timeout"
	KeyImportLimit         = "import_limit"
	KeyConfirmSaveOnExit   = "confirm_save_on_exit"
	KeySave                = "save"
	KeyCancel              = "cancel"
	KeyOK                  = "ok"
	KeyBrowse              = "browse"
	KeySettingsSaved       = "settings_saved"
	KeyRestartRequired     = "restart_required"
	KeyUnsavedTitle        = "unsaved_title"
	KeyUnsavedMessage      = "unsaved_message"
	KeyErrorOpeningFile    = "error_opening_file"
	KeyLoadFailed          = "load_failed"
	KeyWorking             = "working"
	KeySavedState          = "saved_state"
	KeyUnsavedState        = "unsaved_state"
	KeyDiscard             = "discard"
	KeyEnvOverride         = "env_override"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: LangEnglish,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == LangSystem {
		// Use system locale - simplified to English for now
		lang = LangEnglish
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts[LangEnglish]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// sortedLanguageCodes returns language codes in a stable order for menus
func (l *Localization) sortedLanguageCodes() []string {
	codes := make([]string, 0, len(l.texts))
	for code := range l.GetAvailableLanguages() {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:            "Video Playlist App",
		KeyFetchVideos:         "Fetch and display videos",
		KeySearchVideos:        "Search videos",
		KeyCreatePlaylist:      "Create a playlist",
		KeyAddToPlaylist:       "Add a video to a playlist",
		KeyRemoveFromPlaylist:  "Remove a video from a playlist",
		KeyDisplayPlaylist:     "Display a playlist",
		KeyDisplayAllPlaylists: "Display all playlists",
		KeyNextPage:            "Next page",
		KeyPrevPage:            "Previous page",
		KeySavePlaylists:       "Save playlists",
		KeyDeletePlaylist:      "Delete a playlist",
		KeyImportYouTube:       "Import YouTube playlist",
		KeyExit:                "Exit",
		KeyPageFormat:          "Page %d",
		KeySettings:            "Settings",
		KeyFile:                "File",
		KeyLanguage:            "Language",
		KeyRevealDataFile:      "Show playlists file",
		KeyAPIBaseURL:          "Video API Base URL",
		KeyDataFile:            "Playlists File",
		KeyRequestTimeout:      "Request Timeout (seconds)",
		KeyImportLimit:         "YouTube Import Limit (0 = all)",
		KeyConfirmSaveOnExit:   "Ask to save unsaved playlists on exit",
		KeySave:                "Save",
		KeyCancel:              "Cancel",
		KeyOK:                  "OK",
		KeyBrowse:              "Browse",
		KeySettingsSaved:       "Settings saved successfully!",
		KeyRestartRequired:     "API URL and playlists file changes apply after restart.",
		KeyUnsavedTitle:        "Unsaved playlists",
		KeyUnsavedMessage:      "Save playlists before exit?",
		KeyErrorOpeningFile:    "Error opening file",
		KeyLoadFailed:          "Failed to load playlists",
		KeyWorking:             "Working...",
		KeySavedState:          "All changes saved",
		KeyUnsavedState:        "Unsaved changes",
		KeyDiscard:             "Don't Save",
		KeyEnvOverride:         "Overridden by environment for this session",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:            "Видео плейлисты",
		KeyFetchVideos:         "Загрузить и показать видео",
		KeySearchVideos:        "Поиск видео",
		KeyCreatePlaylist:      "Создать плейлист",
		KeyAddToPlaylist:       "Добавить видео в плейлист",
		KeyRemoveFromPlaylist:  "Удалить видео из плейлиста",
		KeyDisplayPlaylist:     "Показать плейлист",
		KeyDisplayAllPlaylists: "Показать все плейлисты",
		KeyNextPage:            "Следующая страница",
		KeyPrevPage:            "Предыдущая страница",
		KeySavePlaylists:       "Сохранить плейлисты",
		KeyDeletePlaylist:      "Удалить плейлист",
		KeyImportYouTube:       "Импорт плейлиста YouTube",
		KeyExit:                "Выход",
		KeyPageFormat:          "Страница %d",
		KeySettings:            "Настройки",
		KeyFile:                "Файл",
		KeyLanguage:            "Язык",
		KeyRevealDataFile:      "Показать файл плейлистов",
		KeyAPIBaseURL:          "Базовый URL API видео",
		KeyDataFile:            "Файл плейлистов",
		KeyRequestTimeout:      "Таймаут запроса (секунды)",
		KeyImportLimit:         "Лимит импорта YouTube (0 = все)",
		KeyConfirmSaveOnExit:   "Спрашивать о сохранении при выходе",
		KeySave:                "Сохранить",
		KeyCancel:              "Отмена",
		KeyOK:                  "ОК",
		KeyBrowse:              "Обзор",
		KeySettingsSaved:       "Настройки успешно сохранены!",
		KeyRestartRequired:     "Изменения URL API и файла плейлистов применятся после перезапуска.",
		KeyUnsavedTitle:        "Несохранённые плейлисты",
		KeyUnsavedMessage:      "Сохранить плейлисты перед выходом?",
		KeyErrorOpeningFile:    "Ошибка открытия файла",
		KeyLoadFailed:          "Не удалось загрузить плейлисты",
		KeyWorking:             "Выполняется...",
		KeySavedState:          "Все изменения сохранены",
		KeyUnsavedState:        "Есть несохранённые изменения",
		KeyDiscard:             "Не сохранять",
		KeyEnvOverride:         "В этом сеансе задано переменной окружения",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:            "Playlists de Vídeo",
		KeyFetchVideos:         "Buscar e exibir vídeos",
		KeySearchVideos:        "Pesquisar vídeos",
		KeyCreatePlaylist:      "Criar uma playlist",
		KeyAddToPlaylist:       "Adicionar vídeo à playlist",
		KeyRemoveFromPlaylist:  "Remover vídeo da playlist",
		KeyDisplayPlaylist:     "Exibir uma playlist",
		KeyDisplayAllPlaylists: "Exibir todas as playlists",
		KeyNextPage:            "Próxima página",
		KeyPrevPage:            "Página anterior",
		KeySavePlaylists:       "Salvar playlists",
		KeyDeletePlaylist:      "Excluir uma playlist",
		KeyImportYouTube:       "Importar playlist do YouTube",
		KeyExit:                "Sair",
		KeyPageFormat:          "Página %d",
		KeySettings:            "Configurações",
		KeyFile:                "Arquivo",
		KeyLanguage:            "Idioma",
		KeyRevealDataFile:      "Mostrar arquivo de playlists",
		KeyAPIBaseURL:          "URL Base da API de Vídeos",
		KeyDataFile:            "Arquivo de Playlists",
		KeyRequestTimeout:      "Tempo Limite da Requisição (segundos)",
		KeyImportLimit:         "Limite de Importação do YouTube (0 = todos)",
		KeyConfirmSaveOnExit:   "Perguntar antes de sair sem salvar",
		KeySave:                "Salvar",
		KeyCancel:              "Cancelar",
		KeyOK:                  "OK",
		KeyBrowse:              "Navegar",
		KeySettingsSaved:       "Configurações salvas com sucesso!",
		KeyRestartRequired:     "Mudanças na URL da API e no arquivo de playlists valem após reiniciar.",
		KeyUnsavedTitle:        "Playlists não salvas",
		KeyUnsavedMessage:      "Salvar playlists antes de sair?",
		KeyErrorOpeningFile:    "Erro ao abrir arquivo",
		KeyLoadFailed:          "Falha ao carregar playlists",
		KeyWorking:             "Processando...",
		KeySavedState:          "Todas as alterações salvas",
		KeyUnsavedState:        "Alterações não salvas",
		KeyDiscard:             "Não salvar",
		KeyEnvOverride:         "Definido pelo ambiente nesta sessão",
	}
}
