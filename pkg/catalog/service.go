// Package catalog fetches the storefront feed from the backend and
// normalizes it for the rendering layer.
package catalog

import (
	"context"

	"github.com/Aya-Jafar/storefront-api/pkg/apiclient"
	"github.com/Aya-Jafar/storefront-api/pkg/dto"
	"github.com/Aya-Jafar/storefront-api/pkg/models"
)

// Backend endpoints. The listing lives at the API root; single products are
// looked up by id.
const (
	EndpointFeed    = "/"
	EndpointProduct = "/products"
)

type Service struct {
	client *apiclient.Client
}

func NewService(client *apiclient.Client) *Service {
	return &Service{client: client}
}

// Feed fetches the products listing and normalizes its tagged sections.
func (s *Service) Feed(ctx context.Context) ([]dto.Section, error) {
	feed, err := apiclient.Request[models.FeedResponse](ctx, s.client, apiclient.Options{
		Endpoint: EndpointFeed,
	})
	if err != nil {
		return nil, err
	}
	return dto.BuildSections(&feed), nil
}

// Product fetches a single product by id and normalizes it.
func (s *Service) Product(ctx context.Context, id string) (*dto.ProductDTO, error) {
	raw, err := apiclient.Request[models.RawProduct](ctx, s.client, apiclient.Options{
		Endpoint:   EndpointProduct,
		PathParams: "/" + id,
	})
	if err != nil {
		return nil, err
	}
	return dto.BuildProduct(&raw), nil
}
