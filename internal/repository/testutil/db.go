package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"safelink/backend/internal/db"
	"safelink/backend/internal/model"
	"safelink/backend/pkg/snowflake"

	_ "modernc.org/sqlite"
)

// snowflakeOnce 确保 snowflake 在所有并行测试中只初始化一次
var snowflakeOnce sync.Once

// NewTestDB 创建内存 SQLite 数据库并执行所有迁移
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	snowflakeOnce.Do(func() {
		if err := snowflake.Init(0); err != nil {
			// sync.Once 内无法使用 t.Fatalf，改用 panic
			panic("failed to initialize snowflake: " + err.Error())
		}
	})

	// 每个测试使用唯一的数据库名称以避免冲突
	dbName := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name(), time.Now().UnixNano())
	database, err := sql.Open("sqlite", dbName)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Migrate(database); err != nil {
		database.Close()
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		database.Close()
	})

	return database
}

// ptrVal 将指针转换为 interface{}，nil 指针返回 nil
func ptrVal[T any](p *T) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// SeedSetting 插入测试配置数据
func SeedSetting(t *testing.T, db *sql.DB, key, value string) {
	t.Helper()

	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)`,
		key, value, now(),
	)
	if err != nil {
		t.Fatalf("failed to seed setting: %v", err)
	}
}

// SeedCustomTerm 插入自定义术语
func SeedCustomTerm(t *testing.T, db *sql.DB, slang, standard, translationsJSON string) int64 {
	t.Helper()

	if translationsJSON == "" {
		translationsJSON = "{}"
	}
	id := snowflake.NextID()
	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO custom_terms (id, slang, standard, translations, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, slang, standard, translationsJSON, now(),
	)
	if err != nil {
		t.Fatalf("failed to seed custom term: %v", err)
	}
	return id
}

// SeedWorkerMessage 插入工人消息并返回其 ID
func SeedWorkerMessage(t *testing.T, db *sql.DB, msg model.WorkerMessage) int64 {
	t.Helper()

	if msg.ID == 0 {
		msg.ID = snowflake.NextID()
	}
	if msg.WorkerLanguage == "" {
		msg.WorkerLanguage = "vi"
	}
	if msg.Translated == "" {
		msg.Translated = msg.Message
	}

	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO worker_messages (id, worker_name, worker_country, worker_language, message, translated, is_urgent, is_read, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		msg.ID, msg.WorkerName, ptrVal(msg.WorkerCountry), msg.WorkerLanguage, msg.Message, msg.Translated,
		boolToInt(msg.IsUrgent), boolToInt(msg.IsRead), now(),
	)
	if err != nil {
		t.Fatalf("failed to seed worker message: %v", err)
	}
	return msg.ID
}

// SeedSavedMessage 插入常用广播消息并返回其 ID
func SeedSavedMessage(t *testing.T, db *sql.DB, category, original, standard string) int64 {
	t.Helper()

	id := snowflake.NextID()
	ts := now()
	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO saved_messages (id, category, original_text, standard_text, usage_count, created_at, updated_at)
		 VALUES (?, ?, ?, ?, 0, ?, ?)`,
		id, category, original, standard, ts, ts,
	)
	if err != nil {
		t.Fatalf("failed to seed saved message: %v", err)
	}
	return id
}

// SeedTBMSession 插入 TBM 会话并返回其 ID
func SeedTBMSession(t *testing.T, db *sql.DB, instruction, status string) int64 {
	t.Helper()

	if status == "" {
		status = model.TBMStatusActive
	}
	id := snowflake.NextID()
	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO tbm_sessions (id, instruction, standard_text, detected_terms, status, created_at) VALUES (?, ?, ?, '[]', ?, ?)`,
		id, instruction, instruction, status, now(),
	)
	if err != nil {
		t.Fatalf("failed to seed tbm session: %v", err)
	}
	return id
}

// SeedBulletinSource 插入公告源并返回其 ID
func SeedBulletinSource(t *testing.T, db *sql.DB, title, url string) int64 {
	t.Helper()

	id := snowflake.NextID()
	ts := now()
	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO bulletin_sources (id, title, url, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		id, title, url, ts, ts,
	)
	if err != nil {
		t.Fatalf("failed to seed bulletin source: %v", err)
	}
	return id
}
