package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

// Resultado de cada estratégia de finalização.
type tierOutcome int

const (
	tierConfirmed tierOutcome = iota
	tierNotConfirmed
	tierFailed
)

// Nomes das estratégias, na ordem fixa de tentativa.
const (
	MethodRPC          = "rpc"
	MethodDirectUpdate = "direct_update"
	MethodCreate       = "create_complete"
)

// completionTier é uma estratégia nomeada da lista ordenada de fallback.
type completionTier struct {
	name string
	run  func(ctx context.Context, userID uuid.UUID) (tierOutcome, error)
}

// CompletionService marca a submissão de um usuário como concluída de
// forma durável, tentando cada estratégia em ordem até uma confirmar:
// RPC → update direto verificado → criação já concluída verificada.
// Depois da confirmação roda a consolidação e o webhook (best effort).
type CompletionService struct {
	subs         SubmissionStore
	consolidator *ConsolidationService
	webhook      WebhookDispatcher
}

func NewCompletionService(subs SubmissionStore, consolidator *ConsolidationService, webhook WebhookDispatcher) *CompletionService {
	return &CompletionService{subs: subs, consolidator: consolidator, webhook: webhook}
}

type CompletionResult struct {
	Success     bool   `json:"success"`
	Method      string `json:"method"`
	WebhookSent bool   `json:"webhook_sent"`
}

// CompleteQuiz executa o fluxo completo de finalização.
// Sucesso da finalização e entrega do webhook são desfechos ortogonais:
// falha do webhook nunca derruba a finalização.
func (s *CompletionService) CompleteQuiz(ctx context.Context, userID uuid.UUID) (*CompletionResult, *StoreError) {
	tiers := []completionTier{
		{name: MethodRPC, run: s.tryRPC},
		{name: MethodDirectUpdate, run: s.tryDirectUpdate},
		{name: MethodCreate, run: s.tryCreateCompleted},
	}

	var confirmedBy string
	var lastErr *StoreError

	for _, tier := range tiers {
		outcome, err := tier.run(ctx, userID)
		switch outcome {
		case tierConfirmed:
			confirmedBy = tier.name
		case tierNotConfirmed:
			log.Printf("[completeQuiz] estratégia %s não confirmou, seguindo para a próxima", tier.name)
			continue
		case tierFailed:
			// Falha (inclusive releitura sem confirmação) não aborta o
			// fluxo: a próxima estratégia ainda é tentada. Só a exaustão
			// das três devolve erro ao chamador.
			lastErr = WrapStoreError("finalizar ("+tier.name+")", err)
			log.Printf("[ERROR] [completeQuiz] estratégia %s: %v", tier.name, err)
			continue
		}
		break
	}

	if confirmedBy == "" {
		if lastErr == nil {
			lastErr = &StoreError{
				Message: "nenhuma estratégia de finalização confirmou a escrita",
				Code:    "completion_exhausted",
			}
		}
		return nil, lastErr
	}

	webhookSent := s.consolidateAndDispatch(ctx, userID)

	return &CompletionResult{
		Success:     true,
		Method:      confirmedBy,
		WebhookSent: webhookSent,
	}, nil
}

// Estratégia 1: procedure do banco. Só retorno explicitamente verdadeiro
// confirma; erro ou retorno falso/ambíguo cai para a próxima (sem retry).
func (s *CompletionService) tryRPC(ctx context.Context, userID uuid.UUID) (tierOutcome, error) {
	ok, err := s.subs.CallCompleteQuiz(ctx, userID)
	if err != nil {
		log.Printf("[completeQuiz] RPC complete_quiz falhou: %v", err)
		return tierNotConfirmed, nil
	}
	if !ok {
		return tierNotConfirmed, nil
	}
	return tierConfirmed, nil
}

// Estratégia 2: update direto seguido de releitura obrigatória.
// Escrita aparentemente aceita mas não confirmada na releitura é
// falha dura — nunca aceitação silenciosa.
func (s *CompletionService) tryDirectUpdate(ctx context.Context, userID uuid.UUID) (tierOutcome, error) {
	sub, err := s.subs.FindByUserID(ctx, userID)
	if err != nil {
		return tierFailed, err
	}
	if sub == nil {
		return tierNotConfirmed, nil
	}

	if err := s.subs.MarkCompleted(ctx, sub.SubmissionID, time.Now().UTC()); err != nil {
		return tierFailed, err
	}
	return s.verifyCompleted(ctx, userID, MethodDirectUpdate)
}

// Estratégia 3: não existe linha nenhuma — cria a submissão já
// concluída e relê, com a mesma exigência de verificação.
func (s *CompletionService) tryCreateCompleted(ctx context.Context, userID uuid.UUID) (tierOutcome, error) {
	sub, err := s.subs.FindByUserID(ctx, userID)
	if err != nil {
		return tierFailed, err
	}
	if sub != nil {
		return tierNotConfirmed, nil
	}

	email, _, err := s.subs.UserInfo(ctx, userID)
	if err != nil {
		return tierFailed, err
	}
	if err := s.subs.CreateCompleted(ctx, userID, email, time.Now().UTC()); err != nil {
		return tierFailed, err
	}
	return s.verifyCompleted(ctx, userID, MethodCreate)
}

func (s *CompletionService) verifyCompleted(ctx context.Context, userID uuid.UUID, method string) (tierOutcome, error) {
	check, err := s.subs.FindByUserID(ctx, userID)
	if err != nil {
		return tierFailed, err
	}
	if check == nil || !check.SubmissionCompleted || check.SubmissionCompletedAt == nil {
		return tierFailed, fmt.Errorf("%s: escrita não confirmada na releitura", method)
	}
	return tierConfirmed, nil
}

// consolidateAndDispatch reconstrói o documento consolidado e dispara o
// webhook. Qualquer falha aqui é registrada e reportada como sent=false.
func (s *CompletionService) consolidateAndDispatch(ctx context.Context, userID uuid.UUID) bool {
	sub, err := s.subs.FindByUserID(ctx, userID)
	if err != nil || sub == nil {
		log.Printf("[ERROR] [completeQuiz] releitura pós-finalização: %v", err)
		return false
	}

	_, fullName, err := s.subs.UserInfo(ctx, userID)
	if err != nil {
		log.Printf("[completeQuiz] nome do usuário indisponível: %v", err)
	}

	consolidated, serr := s.consolidator.Rebuild(ctx, sub, fullName)
	if serr != nil {
		log.Printf("[ERROR] [completeQuiz] consolidação: %v", serr)
		return false
	}

	if s.webhook == nil {
		return false
	}
	sent := s.webhook.Send(ctx, consolidated)
	if !sent {
		log.Printf("[WARN] [completeQuiz] webhook não entregue para submissão %s (não fatal)", sub.SubmissionID)
	}
	return sent
}
