package session

import (
	"context"
	"errors"
	"sync"

	"github.com/redis/go-redis/v9"
)

// ErrSlotMissing indica slot vazio ou inexistente.
var ErrSlotMissing = errors.New("slot de perfil vazio")

// Slot abstrai o armazenamento durável do perfil ativo.
type Slot interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, value string) error
	Del(ctx context.Context) error
}

// Store mantém o perfil ativo em memória, sincronizado com o slot durável.
// A leitura do slot acontece uma única vez por processo; depois disso o
// valor em cache é a fonte da verdade.
type Store struct {
	slot Slot

	mu     sync.Mutex
	loaded bool
	role   Role
}

// NewStore cria o estado de sessão sobre o slot informado.
func NewStore(slot Slot) *Store {
	return &Store{slot: slot}
}

// Get devolve o perfil ativo, carregando o slot na primeira chamada.
// Slot ausente ou corrompido equivale a nenhum perfil selecionado.
func (s *Store) Get(ctx context.Context) Role {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		s.loaded = true
		s.role = RoleNone
		if raw, err := s.slot.Get(ctx); err == nil {
			if role, ok := ParseRole(raw); ok {
				s.role = role
			}
		}
	}
	return s.role
}

// Set grava o perfil no slot e atualiza o cache.
func (s *Store) Set(ctx context.Context, role Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if role == RoleNone {
		if err := s.slot.Del(ctx); err != nil {
			return err
		}
	} else {
		if err := s.slot.Set(ctx, string(role)); err != nil {
			return err
		}
	}

	s.loaded = true
	s.role = role
	return nil
}

// Clear remove o perfil ativo (logout).
func (s *Store) Clear(ctx context.Context) error {
	return s.Set(ctx, RoleNone)
}

// RedisSlot guarda o perfil em uma única chave no Redis.
type RedisSlot struct {
	client *redis.Client
	key    string
}

// NewRedisSlot cria o slot sobre o cliente informado.
func NewRedisSlot(client *redis.Client, key string) *RedisSlot {
	return &RedisSlot{client: client, key: key}
}

func (s *RedisSlot) Get(ctx context.Context) (string, error) {
	val, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrSlotMissing
		}
		return "", err
	}
	return val, nil
}

func (s *RedisSlot) Set(ctx context.Context, value string) error {
	return s.client.Set(ctx, s.key, value, 0).Err()
}

func (s *RedisSlot) Del(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}
