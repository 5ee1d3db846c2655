package ledger_test

import (
	"context"
	"errors"

	"github.com/zuberiservices/hawker-ledger/internal/domain/entity"
	"github.com/zuberiservices/hawker-ledger/internal/domain/repository"
)

// In-memory fakes of the persistence ports, shared by the engine and report
// tests. The tx runner snapshots the ledger before running the callback and
// restores it on error, mirroring a DB rollback.

type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo(users ...*entity.User) *memUserRepo {
	r := &memUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *memUserRepo) Create(user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *memUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) ListHawkers() ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.IsHawker() {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *memUserRepo) Count() (int, error) { return len(r.users), nil }

type memProductRepo struct {
	products map[string]*entity.Product
}

func newMemProductRepo(products ...*entity.Product) *memProductRepo {
	r := &memProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		r.products[p.Name] = p
	}
	return r
}

func (r *memProductRepo) Create(product *entity.Product) error {
	r.products[product.Name] = product
	return nil
}

func (r *memProductRepo) GetByName(name string) (*entity.Product, error) {
	return r.products[name], nil
}

func (r *memProductRepo) List() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *memProductRepo) DeleteAll() error {
	r.products = make(map[string]*entity.Product)
	return nil
}

type memLedgerRepo struct {
	entries []*entity.SalesEntry
	nextSeq int64
	// appendErr, when set, makes AppendBatch fail after partially assigning
	// rows, to exercise the rollback path.
	appendErr error
}

func (r *memLedgerRepo) AppendBatch(entries []*entity.SalesEntry) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	for _, e := range entries {
		r.nextSeq++
		e.Seq = r.nextSeq
		r.entries = append(r.entries, e)
	}
	return nil
}

func (r *memLedgerRepo) ListAll() ([]*entity.SalesEntry, error) {
	return append([]*entity.SalesEntry(nil), r.entries...), nil
}

func (r *memLedgerRepo) ListByHawker(hawkerID string) ([]*entity.SalesEntry, error) {
	var out []*entity.SalesEntry
	for _, e := range r.entries {
		if e.HawkerID == hawkerID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memLedgerRepo) LastN(n int) ([]*entity.SalesEntry, error) {
	if n >= len(r.entries) {
		return append([]*entity.SalesEntry(nil), r.entries...), nil
	}
	return append([]*entity.SalesEntry(nil), r.entries[len(r.entries)-n:]...), nil
}

var _ repository.LedgerRepository = (*memLedgerRepo)(nil)

type memTxRunner struct {
	users    *memUserRepo
	products *memProductRepo
	entries  *memLedgerRepo
}

func (r *memTxRunner) Run(ctx context.Context, fn func(
	users repository.UserRepository,
	products repository.ProductRepository,
	entries repository.LedgerRepository,
) error) error {
	snapshot := append([]*entity.SalesEntry(nil), r.entries.entries...)
	seq := r.entries.nextSeq
	if err := fn(r.users, r.products, r.entries); err != nil {
		r.entries.entries = snapshot
		r.entries.nextSeq = seq
		return err
	}
	return nil
}

var errStoreDown = errors.New("store down")
