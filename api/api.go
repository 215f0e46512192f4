package api

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/kod2ulz/fintava-go/client"
)

type ServerOption func(*Server)

func WithClient(cl *client.Fintava) ServerOption {
	return func(s *Server) {
		s.client = cl
	}
}

func WithConfig(conf *client.Config) ServerOption {
	return func(s *Server) {
		var err error
		if s.client, err = client.FintavaClient(s.log, client.WithConfig(conf)); err != nil {
			s.log.WithError(err).Fatal("failed to initialise fintava client using config")
		}
	}
}

func WithCredentials(secretKey, environment string) ServerOption {
	return func(s *Server) {
		var err error
		if s.client, err = client.FintavaClient(s.log, client.WithCredentials(secretKey, environment)); err != nil {
			s.log.WithError(err).Fatal("failed to initialise fintava client using credentials")
		}
	}
}

// Server exposes one service per API resource. All services share the same
// immutable transport client and are safe for concurrent use.
type Server struct {
	client *client.Fintava
	log    *logrus.Logger

	Customer       *CustomerService
	Wallet         *WalletService
	Transfer       *TransferService
	Card           *CardService
	VirtualAccount *VirtualAccountService
	Utility        *UtilityService
	Webhook        *WebhookService
	Bank           *BankService
	Transaction    *TransactionService
}

func NewServer(log *logrus.Logger, opts ...ServerOption) (out *Server, err error) {
	if log == nil {
		log = logrus.New()
	}
	out = &Server{log: log}
	for i := range opts {
		opts[i](out)
	}
	if out.client == nil {
		return nil, errors.Errorf("client not initialised")
	}
	out.Customer = &CustomerService{client: out.client}
	out.Wallet = &WalletService{client: out.client}
	out.Transfer = &TransferService{client: out.client}
	out.Card = &CardService{client: out.client}
	out.VirtualAccount = &VirtualAccountService{client: out.client}
	out.Utility = newUtilityService(out.client)
	out.Webhook = &WebhookService{client: out.client}
	out.Bank = &BankService{client: out.client}
	out.Transaction = &TransactionService{client: out.client}
	return
}
