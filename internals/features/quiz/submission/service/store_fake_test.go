package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"sistema_mar_backend/internals/features/quiz/submission/model"
)

// fakeStore implementa Store em memória para os testes dos serviços.
// Flags de comportamento simulam falhas e escritas perdidas.
type fakeStore struct {
	sub *model.SubmissionModel

	rpcOK  bool
	rpcErr error

	findErr   error
	ensureErr error
	markErr   error
	createErr error

	// quando false, MarkCompleted/CreateCompleted "aceitam" a escrita
	// mas não mudam nada — simula escrita perdida para a releitura.
	writesStick bool

	email       string
	fullName    string
	userInfoErr error

	answers map[uuid.UUID]string // question_id → answer_text
	rows    []AnswerRow
	listErr error

	consolidated  *model.ConsolidatedResponseModel
	consUpsertErr error

	modulesSet  []int
	statusesSet []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{writesStick: true, answers: map[uuid.UUID]string{}}
}

func (f *fakeStore) FindByUserID(_ context.Context, _ uuid.UUID) (*model.SubmissionModel, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.sub, nil
}

func (f *fakeStore) EnsureForUser(_ context.Context, userID uuid.UUID, email string) (*model.SubmissionModel, error) {
	if f.ensureErr != nil {
		return nil, f.ensureErr
	}
	if f.sub == nil {
		f.sub = &model.SubmissionModel{
			SubmissionID:            uuid.New(),
			SubmissionUserID:        userID,
			SubmissionUserEmail:     email,
			SubmissionCurrentModule: 1,
			SubmissionStatus:        model.SubmissionStatusInProgress,
			SubmissionStartedAt:     time.Now().UTC(),
		}
	}
	return f.sub, nil
}

func (f *fakeStore) MarkCompleted(_ context.Context, _ uuid.UUID, at time.Time) error {
	if f.markErr != nil {
		return f.markErr
	}
	if f.writesStick && f.sub != nil {
		f.sub.SubmissionCompleted = true
		f.sub.SubmissionCompletedAt = &at
		f.sub.SubmissionStatus = model.SubmissionStatusCompleted
	}
	return nil
}

func (f *fakeStore) CreateCompleted(_ context.Context, userID uuid.UUID, email string, at time.Time) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.writesStick {
		f.sub = &model.SubmissionModel{
			SubmissionID:          uuid.New(),
			SubmissionUserID:      userID,
			SubmissionUserEmail:   email,
			SubmissionStatus:      model.SubmissionStatusCompleted,
			SubmissionCompleted:   true,
			SubmissionCompletedAt: &at,
		}
	}
	return nil
}

func (f *fakeStore) UpdateCurrentModule(_ context.Context, _ uuid.UUID, module int) error {
	f.modulesSet = append(f.modulesSet, module)
	if f.sub != nil {
		f.sub.SubmissionCurrentModule = module
	}
	return nil
}

func (f *fakeStore) UpdateStatus(_ context.Context, _ uuid.UUID, status string) error {
	f.statusesSet = append(f.statusesSet, status)
	if f.sub != nil {
		f.sub.SubmissionStatus = status
	}
	return nil
}

func (f *fakeStore) CallCompleteQuiz(_ context.Context, _ uuid.UUID) (bool, error) {
	return f.rpcOK, f.rpcErr
}

func (f *fakeStore) UserInfo(_ context.Context, _ uuid.UUID) (string, string, error) {
	return f.email, f.fullName, f.userInfoErr
}

func (f *fakeStore) Upsert(_ context.Context, answer *model.AnswerModel) error {
	f.answers[answer.AnswerQuestionID] = answer.AnswerText
	return nil
}

func (f *fakeStore) ListBySubmission(_ context.Context, _ uuid.UUID) ([]AnswerRow, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	rows := make([]AnswerRow, len(f.rows))
	copy(rows, f.rows)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].OrderNumber < rows[j].OrderNumber })
	return rows, nil
}

func (f *fakeStore) UpsertConsolidated(_ context.Context, row *model.ConsolidatedResponseModel) error {
	if f.consUpsertErr != nil {
		return f.consUpsertErr
	}
	cp := *row
	f.consolidated = &cp
	return nil
}

func (f *fakeStore) FindBySubmission(_ context.Context, _ uuid.UUID) (*model.ConsolidatedResponseModel, error) {
	return f.consolidated, nil
}

func (f *fakeStore) ListAll(_ context.Context) ([]model.ConsolidatedResponseModel, error) {
	if f.consolidated == nil {
		return nil, nil
	}
	return []model.ConsolidatedResponseModel{*f.consolidated}, nil
}

// fakeWebhook registra os envios e devolve o resultado configurado.
type fakeWebhook struct {
	ok    bool
	calls int
	last  *model.ConsolidatedResponseModel
}

func (w *fakeWebhook) Send(_ context.Context, row *model.ConsolidatedResponseModel) bool {
	w.calls++
	w.last = row
	return w.ok
}
