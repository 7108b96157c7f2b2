package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	_ "github.com/mattn/go-sqlite3"

	"mt5-term/internal/config"
)

// Store 封装事件日志使用的 SQLite 连接。
type Store struct {
	db *sql.DB
}

var memorySeq atomic.Int64

var pragmas = []string{
	"PRAGMA journal_mode=WAL;",
	"PRAGMA synchronous=NORMAL;",
}

// Open 根据配置打开 SQLite。内存模式下同一个 Store 的连接共享同一个库，
// 不同 Store 之间互不可见。
func Open(cfg config.DatabaseConfig) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=on", cfg.Path)
	if cfg.InMemory {
		dsn = fmt.Sprintf("file:mt5mem%d?mode=memory&cache=shared&_busy_timeout=5000", memorySeq.Add(1))
	} else if err := ensureDir(filepath.Dir(cfg.Path)); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: 打开 SQLite 数据库失败: %w", err)
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	if cfg.InMemory {
		// 最后一个连接关闭时内存库会被销毁。
		conn.SetMaxIdleConns(max(cfg.MaxIdleConns, 1))
		conn.SetConnMaxLifetime(0)
	}

	for _, pragma := range pragmas {
		if cfg.InMemory {
			break
		}
		if _, err := conn.Exec(pragma); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("store: 执行 %q 失败: %w", pragma, err)
		}
	}

	return &Store{db: conn}, nil
}

// DB 返回底层 *sql.DB.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close 关闭数据库连接。
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func ensureDir(path string) error {
	if path == "" || path == "." {
		return nil
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("store: 创建目录 %q 失败: %w", path, err)
	}
	return nil
}
