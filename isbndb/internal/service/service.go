package service

import (
	"context"
	"sync"

	"github.com/Astemirdum/isbndb-service/pkg/isbndb"
	"go.uber.org/zap"
)

// AgentConfig is the configuration scope an agent is memoized in. The zero
// value has no access key and no agent.
type AgentConfig struct {
	AccessKey string

	mu    sync.RWMutex
	agent Agent
}

func NewAgentConfig(accessKey string) *AgentConfig {
	return &AgentConfig{AccessKey: accessKey}
}

func (c *AgentConfig) loadAgent() Agent {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.agent
}

type Service struct {
	log *zap.Logger
	lib Library
	cfg *AgentConfig
}

func NewService(lib Library, cfg *AgentConfig, log *zap.Logger) *Service {
	if cfg == nil {
		cfg = &AgentConfig{}
	}
	return &Service{
		log: log.Named("service"),
		lib: lib,
		cfg: cfg,
	}
}

// GetAgent returns the agent of the service's configuration, allocating it
// on first use.
func (s *Service) GetAgent() (Agent, error) {
	if agent := s.cfg.loadAgent(); agent != nil {
		return agent, nil
	}
	return s.AllocateAgent(s.cfg)
}

// AllocateAgent creates an agent for cfg and stores it there. The key is
// cfg.AccessKey, or the library default when that is empty. An agent already
// stored in cfg is never replaced and is returned instead.
func (s *Service) AllocateAgent(cfg *AgentConfig) (Agent, error) {
	cfg.mu.Lock()
	defer cfg.mu.Unlock()
	if cfg.agent != nil {
		return cfg.agent, nil
	}

	key := cfg.AccessKey
	if key == "" {
		key = s.lib.DefaultAccessKey()
	}
	agent, err := s.lib.NewAgent(key)
	if err != nil {
		return nil, err
	}
	cfg.agent = agent
	s.log.Debug("agent allocated", zap.Bool("default_key", cfg.AccessKey == ""))
	return agent, nil
}

func (s *Service) find(ctx context.Context, kind isbndb.Kind, id string) (*isbndb.Resource, error) {
	agent, err := s.GetAgent()
	if err != nil {
		return nil, err
	}
	return agent.Find(ctx, kind, id)
}

func (s *Service) search(ctx context.Context, kind isbndb.Kind, args isbndb.Args) (*isbndb.Iterator, error) {
	agent, err := s.GetAgent()
	if err != nil {
		return nil, err
	}
	return agent.Search(ctx, kind, args)
}
