package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/yungbote/aedb-backend/internal/platform/logger"
)

type Options struct {
	DSN string
	// LogLevel defaults to Warn.
	LogLevel gormLogger.LogLevel
	// NowFunc overrides the clock used for auto timestamps.
	NowFunc func() time.Time
}

type Service struct {
	db      *gorm.DB
	log     *logger.Logger
	dialect Dialect
}

func NewService(logg *logger.Logger, opts Options) (*Service, error) {
	serviceLog := logg.With("service", "DatabaseService")

	target, err := ParseDSN(opts.DSN)
	if err != nil {
		return nil, err
	}

	var dialector gorm.Dialector
	switch target.Dialect {
	case DialectPostgres:
		dialector = postgres.Open(target.Conn)
	default:
		dialector = sqlite.Open(target.Conn)
	}

	level := opts.LogLevel
	if level == 0 {
		level = gormLogger.Warn
	}
	cfg := &gorm.Config{
		TranslateError: true,
		Logger: gormLogger.New(zapWriter{log: serviceLog}, gormLogger.Config{
			SlowThreshold:             1 * time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		}),
	}
	if opts.NowFunc != nil {
		cfg.NowFunc = opts.NowFunc
	}

	gdb, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", target.Dialect, err)
	}
	if target.InMemory() {
		// every pooled connection would otherwise get its own empty database
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	serviceLog.Info("Database connected", "dialect", target.Dialect)
	return &Service{db: gdb, log: serviceLog, dialect: target.Dialect}, nil
}

func (s *Service) DB() *gorm.DB { return s.db }

func (s *Service) Dialect() Dialect { return s.dialect }

func (s *Service) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

type zapWriter struct {
	log *logger.Logger
}

func (w zapWriter) Printf(format string, args ...interface{}) {
	w.log.SugaredLogger.Infof(format, args...)
}
