package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sistema_mar_backend/internals/features/quiz/submission/model"
	userModel "sistema_mar_backend/internals/features/users/user/model"
)

// GormStore implementa Store sobre o PostgreSQL via GORM.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

/* ===== SubmissionStore ===== */

func (s *GormStore) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.SubmissionModel, error) {
	var sub model.SubmissionModel
	err := s.db.WithContext(ctx).First(&sub, "submission_user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// EnsureForUser é idempotente sob corrida: o ON CONFLICT DO NOTHING no
// índice único de user_id garante no máximo uma submissão por usuário;
// quem perde a corrida relê a linha vencedora.
func (s *GormStore) EnsureForUser(ctx context.Context, userID uuid.UUID, email string) (*model.SubmissionModel, error) {
	if sub, err := s.FindByUserID(ctx, userID); err != nil || sub != nil {
		return sub, err
	}

	novo := model.SubmissionModel{
		SubmissionUserID:        userID,
		SubmissionUserEmail:     email,
		SubmissionCurrentModule: 1,
		SubmissionStatus:        model.SubmissionStatusInProgress,
		SubmissionStartedAt:     time.Now().UTC(),
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "submission_user_id"}},
			DoNothing: true,
		}).
		Create(&novo).Error
	if err != nil {
		return nil, err
	}

	sub, err := s.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, errors.New("submissão não encontrada após criação")
	}
	return sub, nil
}

func (s *GormStore) MarkCompleted(ctx context.Context, submissionID uuid.UUID, at time.Time) error {
	return s.db.WithContext(ctx).Model(&model.SubmissionModel{}).
		Where("submission_id = ?", submissionID).
		Updates(map[string]any{
			"submission_completed":    true,
			"submission_completed_at": at,
			"submission_status":       model.SubmissionStatusCompleted,
		}).Error
}

func (s *GormStore) CreateCompleted(ctx context.Context, userID uuid.UUID, email string, at time.Time) error {
	sub := model.SubmissionModel{
		SubmissionUserID:        userID,
		SubmissionUserEmail:     email,
		SubmissionCurrentModule: 1,
		SubmissionStatus:        model.SubmissionStatusCompleted,
		SubmissionCompleted:     true,
		SubmissionStartedAt:     at,
		SubmissionCompletedAt:   &at,
	}
	return s.db.WithContext(ctx).Create(&sub).Error
}

func (s *GormStore) UpdateCurrentModule(ctx context.Context, submissionID uuid.UUID, module int) error {
	return s.db.WithContext(ctx).Model(&model.SubmissionModel{}).
		Where("submission_id = ?", submissionID).
		Update("submission_current_module", module).Error
}

func (s *GormStore) UpdateStatus(ctx context.Context, submissionID uuid.UUID, status string) error {
	return s.db.WithContext(ctx).Model(&model.SubmissionModel{}).
		Where("submission_id = ?", submissionID).
		Update("submission_status", status).Error
}

func (s *GormStore) CallCompleteQuiz(ctx context.Context, userID uuid.UUID) (bool, error) {
	var ok bool
	err := s.db.WithContext(ctx).Raw("SELECT complete_quiz(?)", userID).Scan(&ok).Error
	if err != nil {
		return false, err
	}
	return ok, nil
}

func (s *GormStore) UserInfo(ctx context.Context, userID uuid.UUID) (string, string, error) {
	var user userModel.UserModel
	err := s.db.WithContext(ctx).Select("id", "email", "full_name").
		First(&user, "id = ?", userID).Error
	if err != nil {
		return "", "", err
	}
	return user.Email, user.FullName, nil
}

/* ===== AnswerStore ===== */

func (s *GormStore) Upsert(ctx context.Context, answer *model.AnswerModel) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "answer_submission_id"},
				{Name: "answer_question_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"answer_text", "updated_at"}),
		}).
		Create(answer).Error
}

func (s *GormStore) ListBySubmission(ctx context.Context, submissionID uuid.UUID) ([]AnswerRow, error) {
	var rows []AnswerRow
	err := s.db.WithContext(ctx).
		Table("quiz_answers AS a").
		Select(`a.answer_question_id AS question_id,
			q.question_text AS question_text,
			q.question_order_number AS order_number,
			a.answer_text AS answer_text`).
		Joins("JOIN quiz_questions q ON q.question_id = a.answer_question_id").
		Joins("JOIN quiz_modules m ON m.module_id = q.question_module_id").
		Where("a.answer_submission_id = ?", submissionID).
		Order("m.module_order_number ASC, q.question_order_number ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

/* ===== ConsolidatedStore ===== */

func (s *GormStore) UpsertConsolidated(ctx context.Context, row *model.ConsolidatedResponseModel) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "resposta_submission_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"resposta_user_email", "resposta_full_name", "data_submissao", "respostas",
			}),
		}).
		Create(row).Error
}

func (s *GormStore) FindBySubmission(ctx context.Context, submissionID uuid.UUID) (*model.ConsolidatedResponseModel, error) {
	var row model.ConsolidatedResponseModel
	err := s.db.WithContext(ctx).First(&row, "resposta_submission_id = ?", submissionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *GormStore) ListAll(ctx context.Context) ([]model.ConsolidatedResponseModel, error) {
	var rows []model.ConsolidatedResponseModel
	err := s.db.WithContext(ctx).Order("data_submissao ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
