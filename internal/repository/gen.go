package repository

import (
	"fmt"
	"os"

	"gorm.io/gen"

	"OnShift/internal/model"
	"OnShift/storage/database"
)

// ========== User 相关查询接口 ==========

// UserQuerier 员工查询接口
type UserQuerier interface {
	// GetByUsername 根据用户名查询员工（登录用）
	//
	// SELECT * FROM @@table WHERE username = @username LIMIT 1
	GetByUsername(username string) (*gen.T, error)

	// GetByPublicID 根据 PublicID 查询员工（API 中 userID 是 public_id）
	//
	// SELECT * FROM @@table WHERE public_id = @publicID LIMIT 1
	GetByPublicID(publicID int64) (*gen.T, error)

	// ListByRole 按角色列出员工（报表筛选下拉用）
	//
	// SELECT * FROM @@table
	// WHERE role = @role AND active = true
	// ORDER BY full_name ASC
	ListByRole(role string) ([]*gen.T, error)
}

// ========== Attendance 相关查询接口 ==========

// AttendanceQuerier 考勤记录查询接口
type AttendanceQuerier interface {
	// GetOpenByUserID 查询用户当前的 open interval
	//
	// SELECT * FROM @@table
	// WHERE user_id = @userID AND is_present = true
	// LIMIT 1
	GetOpenByUserID(userID int64) (*gen.T, error)

	// ListOpen 所有在岗记录（管理员 dashboard）
	//
	// SELECT * FROM @@table
	// WHERE is_present = true
	// ORDER BY check_in DESC
	ListOpen() ([]*gen.T, error)

	// ListRecent 系统最近 N 条记录
	//
	// SELECT * FROM @@table
	// ORDER BY check_in DESC
	// LIMIT @limit
	ListRecent(limit int) ([]*gen.T, error)

	// ListRecentByUserID 单个员工最近 N 条记录
	//
	// SELECT * FROM @@table
	// WHERE user_id = @userID
	// ORDER BY check_in DESC
	// LIMIT @limit
	ListRecentByUserID(userID int64, limit int) ([]*gen.T, error)

	// ListByCheckInRange 按打卡时间范围查询（报表，[from, to)）
	//
	// SELECT * FROM @@table
	// WHERE check_in >= @from AND check_in < @to
	//   {{if userID > 0}}
	//   AND user_id = @userID
	//   {{end}}
	// ORDER BY id ASC
	ListByCheckInRange(from, to string, userID int64) ([]*gen.T, error)
}

func Generate() error {
	if err := database.Init(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	db := database.DB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:           "./internal/repository/query", // 生成代码的输出路径
		ModelPkgPath:      "OnShift/internal/model",
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface | gen.WithoutContext,
		FieldNullable:     true,
		FieldCoverable:    false,
		FieldSignable:     false,
		FieldWithIndexTag: false,
		FieldWithTypeTag:  true,
	})

	g.UseDB(db)

	// 注册现有的 model，GORM Gen 会使用这些 model 而不是生成新的
	g.ApplyBasic(
		&model.User{},
		&model.Attendance{},
		&model.AttendanceEvent{},
	)

	g.ApplyInterface(func(UserQuerier) {}, &model.User{})
	g.ApplyInterface(func(AttendanceQuerier) {}, &model.Attendance{})

	g.Execute()

	return nil
}

func RunGenerate() {
	if err := Generate(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate code: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Code generation completed successfully!")
}
