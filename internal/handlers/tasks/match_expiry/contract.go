//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=match_expiry_test
package match_expiry

import "context"

type Service interface {
	ExpireStaleMatches(ctx context.Context) (int64, error)
}
