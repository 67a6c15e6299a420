// Package chama manages group savings circles and their on-chain records.
package chama

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"tajiri/internal/models"
	"tajiri/internal/repositories"
	"tajiri/internal/services/trustscore"
)

// ChainRegistrar anchors a chama to a blockchain contract and returns its
// address. The production registrar targets the Celo Alfajores testnet.
type ChainRegistrar interface {
	CreateContract(ctx context.Context, name string) (string, error)
}

// SimulatedRegistrar issues syntactically valid addresses without touching a
// chain. It stands in until contract deployment is wired.
type SimulatedRegistrar struct{}

func (SimulatedRegistrar) CreateContract(ctx context.Context, name string) (string, error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate contract address: %w", err)
	}
	return "0x" + hex.EncodeToString(buf), nil
}

// TrustNudger applies incremental trust-score adjustments.
type TrustNudger interface {
	ApplyEvent(ctx context.Context, userID uint, event trustscore.Event) (*trustscore.Adjustment, error)
}

// CreateResult reports a newly created chama.
type CreateResult struct {
	ChamaID           uint   `json:"chama_id"`
	BlockchainAddress string `json:"blockchain_address"`
}

type Service struct {
	chamas    repositories.ChamaRepository
	registrar ChainRegistrar
	trust     TrustNudger
}

func NewService(chamas repositories.ChamaRepository, registrar ChainRegistrar, trust TrustNudger) *Service {
	return &Service{chamas: chamas, registrar: registrar, trust: trust}
}

// Create registers a new chama on chain, persists it and enrolls the creator
// as its leader.
func (s *Service) Create(ctx context.Context, name, description string, monthlyTarget float64, creatorID uint) (*CreateResult, error) {
	address, err := s.registrar.CreateContract(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to register chama on chain: %w", err)
	}

	group := &models.ChamaGroup{
		Name:              name,
		Description:       description,
		MonthlyTarget:     monthlyTarget,
		BlockchainAddress: address,
	}
	if err := s.chamas.CreateGroup(group); err != nil {
		return nil, err
	}

	if err := s.enroll(ctx, group.ID, creatorID, models.ChamaRoleLeader); err != nil {
		return nil, err
	}

	return &CreateResult{ChamaID: group.ID, BlockchainAddress: address}, nil
}

// Join enrolls a user as a member of an existing chama.
func (s *Service) Join(ctx context.Context, chamaID, userID uint) error {
	if _, err := s.chamas.GetGroup(chamaID); err != nil {
		return err
	}
	return s.enroll(ctx, chamaID, userID, models.ChamaRoleMember)
}

// ListForUser returns the chamas a user belongs to.
func (s *Service) ListForUser(ctx context.Context, userID uint) ([]repositories.UserChama, error) {
	return s.chamas.GetUserChamas(userID)
}

func (s *Service) enroll(ctx context.Context, chamaID, userID uint, role string) error {
	member := &models.ChamaMember{
		ChamaID:  chamaID,
		UserID:   userID,
		Role:     role,
		JoinedAt: time.Now().UTC(),
	}
	if err := s.chamas.AddMember(member); err != nil {
		return err
	}
	if _, err := s.trust.ApplyEvent(ctx, userID, trustscore.ChamaJoinEvent{}); err != nil {
		return fmt.Errorf("failed to adjust trust score: %w", err)
	}
	return nil
}
