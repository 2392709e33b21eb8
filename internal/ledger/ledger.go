package ledger

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/iurnickita/reviewme/internal/ledger/config"
	"github.com/iurnickita/reviewme/internal/model"
)

// Реестр скидок коммерческого расширения.
// Уникальность кода гарантирует само хранилище (первичный ключ),
// сервис выдачи не должен быть единственной защитой от дублей
type Ledger interface {
	Exists(ctx context.Context, code string) (bool, error)
	Create(ctx context.Context, record model.DiscountRecord) error
}

var (
	ErrAlreadyExists = errors.New("already exists")
)

type ledger struct {
	database *sql.DB
}

func NewLedger(cfg config.Config) (Ledger, error) {
	db, err := sql.Open("pgx", cfg.DBDsn)
	if err != nil {
		return nil, err
	}

	// Таблица скидок.
	// Одна строка на код, код - естественный ключ идемпотентности
	_, err = db.Exec(
		"CREATE TABLE IF NOT EXISTS discount (" +
			" code VARCHAR (32) PRIMARY KEY," +
			" name VARCHAR (100) NOT NULL," +
			" status VARCHAR (10) NOT NULL," +
			" uses INTEGER NOT NULL," +
			" max_uses INTEGER NOT NULL," +
			" amount INTEGER NOT NULL," +
			" type VARCHAR (10) NOT NULL," +
			" start_date DATE NOT NULL," +
			" expiration DATE NOT NULL," +
			" not_global BOOLEAN NOT NULL," +
			" use_once BOOLEAN NOT NULL" +
			" );")
	if err != nil {
		return nil, err
	}

	return &ledger{
		database: db,
	}, nil
}

func (ledger *ledger) Exists(ctx context.Context, code string) (bool, error) {
	row := ledger.database.QueryRowContext(ctx,
		"SELECT code FROM discount"+
			" WHERE code = $1",
		code)
	var found string
	err := row.Scan(&found)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (ledger *ledger) Create(ctx context.Context, record model.DiscountRecord) error {
	//Запись новой скидки
	_, err := ledger.database.ExecContext(ctx,
		"INSERT INTO discount (code, name, status, uses, max_uses, amount, type, start_date, expiration, not_global, use_once)"+
			" VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)",
		record.Code,
		record.Data.Name,
		record.Data.Status,
		record.Data.Uses,
		record.Data.MaxUses,
		record.Data.Amount,
		record.Data.Type,
		record.Data.Start,
		record.Data.Expiration,
		record.Data.NotGlobal,
		record.Data.UseOnce)
	if err != nil {
		// Проверка: код уже выдан
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" {
				return ErrAlreadyExists
			}
		}
		return err
	}
	return nil
}
