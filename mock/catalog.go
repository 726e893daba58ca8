package mock

import "github.com/fwojciec/docbot"

var _ docbot.CatalogService = (*CatalogService)(nil)

// CatalogService is a mock implementation of docbot.CatalogService.
type CatalogService struct {
	TopicFn       func(key string) (*docbot.Topic, error)
	SubcategoryFn func(topicKey, subKey string) (*docbot.Subcategory, error)
	TopicsFn      func() []*docbot.Topic
}

func (s *CatalogService) Topic(key string) (*docbot.Topic, error) {
	return s.TopicFn(key)
}

func (s *CatalogService) Subcategory(topicKey, subKey string) (*docbot.Subcategory, error) {
	return s.SubcategoryFn(topicKey, subKey)
}

func (s *CatalogService) Topics() []*docbot.Topic {
	return s.TopicsFn()
}
