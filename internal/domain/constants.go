package domain

import "time"

// Reply markers and separators. The parser matches these literally.
const (
	MarkerRecommendations = "Рекомендации:"
	MarkerStates          = "Состояния:"
	StateBullet           = "-"
	StateSeparator        = "—"
)

// Prompt labels for each vital sign.
const (
	LabelPulse       = "Пульс"
	LabelHRV         = "HRV"
	LabelSpO2        = "SpO2"
	LabelPressure    = "Давление"
	LabelTemperature = "Температура"
	LabelDescription = "Общее самочувствие"
)

// User-facing messages shown by the form front-ends.
const (
	MsgFillAllFields     = "Пожалуйста, заполните все поля!"
	MsgRequesting        = "Запрашиваю данные у DeepSeek..."
	MsgNoRecommendations = "Не удалось получить рекомендации."
	MsgNoStates          = "Не удалось определить состояния"
	MsgReferenceFailed   = "Ошибка загрузки протоколов: %v"
	MsgBusy              = "Анализ уже выполняется, дождитесь результата."
	APIErrorFormat       = "Ошибка API (код %d): %s"
)

// Model defaults.
const (
	DefaultProvider      = ProviderKindHTTP
	DefaultEndpoint      = "https://api.deepseek.com/v1/chat/completions"
	DefaultBaseURL       = "https://api.deepseek.com/v1"
	DefaultModelID       = "deepseek-chat"
	DefaultTemperature   = 0.3
	DefaultAuthEnvVar    = "DEEPSEEK_API_KEY"
	DefaultReferencePath = "протокола пдф.pdf"
	DefaultServerAddr    = ":8080"
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
)

// DefaultServerShutdownTimeout bounds graceful shutdown of the web form.
const DefaultServerShutdownTimeout = 5 * time.Second
