package app

import (
	"context"
	"os"

	"go-payroll/internal/auth"
	"go-payroll/internal/department"
	"go-payroll/internal/employee"
	"go-payroll/internal/payroll"
	"go-payroll/internal/payrollitemtype"
	"go-payroll/internal/shared/connection"
	"go-payroll/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// The outbox table is written with raw SQL, so it is created here rather
// than through AutoMigrate.
const outboxDDL = `
CREATE TABLE IF NOT EXISTS outbox_events (
	id UUID PRIMARY KEY,
	request_id TEXT,
	aggregate_type TEXT NOT NULL,
	aggregate_id UUID NOT NULL,
	event_type TEXT NOT NULL,
	topic TEXT NOT NULL,
	payload JSONB NOT NULL,
	status TEXT NOT NULL DEFAULT 'pending',
	retry_count INT NOT NULL DEFAULT 0,
	error_message TEXT,
	next_retry_at TIMESTAMPTZ,
	processed_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	if err := migrate(gormDB); err != nil {
		return err
	}

	if err := seed(gormDB); err != nil {
		return err
	}

	return registerModules(router, db, gormDB, redisClient)
}

func migrate(gormDB *gorm.DB) error {
	if err := gormDB.AutoMigrate(
		&auth.User{},
		&counter.Counter{},
		&department.Department{},
		&employee.Employee{},
		&payrollitemtype.PayrollItemType{},
		&payroll.Payroll{},
		&payroll.PayrollItem{},
	); err != nil {
		return err
	}

	return gormDB.Exec(outboxDDL).Error
}

func seed(gormDB *gorm.DB) error {
	if err := payrollitemtype.Seed(context.Background(), payrollitemtype.NewRepository(gormDB)); err != nil {
		return err
	}

	zap.L().Info("reference data seeded")
	return nil
}
