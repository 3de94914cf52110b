package providers

import (
	"aquad/internal/structures"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

type TypeEnum int

const (
	TypeApp TypeEnum = iota
	TypeGet
	TypePost
)

// Logger is the process-wide logging surface. Each TypeEnum channel writes
// to its own file under the configured log dir.
type Logger interface {
	Errorf(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Debugf(t TypeEnum, format string, args ...interface{})
	Fatalf(t TypeEnum, format string, args ...interface{})
	Close()
}

func GetLogTypeByRequestType(method string) TypeEnum {
	if method == "POST" {
		return TypePost
	}
	return TypeGet
}

type logFiles struct {
	app  *os.File
	get  *os.File
	post *os.File
}

type LogProvider struct {
	app   zerolog.Logger
	get   zerolog.Logger
	post  zerolog.Logger
	files logFiles
}

func NewLogProvider(conf *structures.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, err
	}

	mode := os.FileMode(conf.Logger.Mode)
	open := func(name string) (*os.File, error) {
		return os.OpenFile(filepath.Join(conf.Logger.Dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, mode)
	}

	appFile, err := open("app.log")
	if err != nil {
		return nil, err
	}
	getFile, err := open("get.log")
	if err != nil {
		appFile.Close()
		return nil, err
	}
	postFile, err := open("post.log")
	if err != nil {
		appFile.Close()
		getFile.Close()
		return nil, err
	}

	newLogger := func(f *os.File) zerolog.Logger {
		return zerolog.New(f).Level(level).With().Timestamp().Logger()
	}

	return &LogProvider{
		app:   newLogger(appFile),
		get:   newLogger(getFile),
		post:  newLogger(postFile),
		files: logFiles{app: appFile, get: getFile, post: postFile},
	}, nil
}

func (lp *LogProvider) byType(t TypeEnum) *zerolog.Logger {
	switch t {
	case TypeGet:
		return &lp.get
	case TypePost:
		return &lp.post
	default:
		return &lp.app
	}
}

func (lp *LogProvider) Errorf(t TypeEnum, format string, args ...interface{}) {
	lp.byType(t).Error().Msgf(format, args...)
}

func (lp *LogProvider) Warnf(t TypeEnum, format string, args ...interface{}) {
	lp.byType(t).Warn().Msgf(format, args...)
}

func (lp *LogProvider) Infof(t TypeEnum, format string, args ...interface{}) {
	lp.byType(t).Info().Msgf(format, args...)
}

func (lp *LogProvider) Debugf(t TypeEnum, format string, args ...interface{}) {
	lp.byType(t).Debug().Msgf(format, args...)
}

func (lp *LogProvider) Fatalf(t TypeEnum, format string, args ...interface{}) {
	lp.byType(t).Fatal().Msgf(format, args...)
}

func (lp *LogProvider) Close() {
	lp.files.app.Close()
	lp.files.get.Close()
	lp.files.post.Close()
}
