package repository

import (
	"github.com/excelenergy/cms/internal/domain/entities"
	"github.com/excelenergy/cms/internal/infrastructure/storage"
)

// LeadsRepository handles inbound leads: contact messages, quote
// requests and client records. New leads are prepended so the admin
// screens show the latest first.
type LeadsRepository struct {
	store *storage.Store
}

// NewLeadsRepository creates a new leads repository
func NewLeadsRepository(store *storage.Store) *LeadsRepository {
	return &LeadsRepository{store: store}
}

// Messages

func (r *LeadsRepository) GetMessages() []entities.Message {
	return storage.Read(r.store, "messages.json", []entities.Message{})
}

// AddMessage assigns id and timestamp and stores the message unread.
func (r *LeadsRepository) AddMessage(msg entities.Message) (entities.Message, error) {
	msg.ID = NewID()
	msg.Timestamp = NowISO()
	msg.Read = false
	messages := append([]entities.Message{msg}, r.GetMessages()...)
	return msg, storage.Write(r.store, "messages.json", messages)
}

func (r *LeadsRepository) MarkMessageRead(id string) (bool, error) {
	messages := r.GetMessages()
	i := indexOf(messages, id)
	if i < 0 {
		return false, nil
	}
	messages[i].Read = true
	return true, storage.Write(r.store, "messages.json", messages)
}

func (r *LeadsRepository) DeleteMessage(id string) (bool, error) {
	messages, removed := removeByID(r.GetMessages(), id)
	if !removed {
		return false, nil
	}
	return true, storage.Write(r.store, "messages.json", messages)
}

// Quotes: created on submission, never updated or deleted via the API.

func (r *LeadsRepository) GetQuotes() []entities.Quote {
	return storage.Read(r.store, "quotes.json", []entities.Quote{})
}

func (r *LeadsRepository) AddQuote(quote entities.Quote) (entities.Quote, error) {
	quote.ID = NewID()
	quote.Timestamp = NowISO()
	quotes := append([]entities.Quote{quote}, r.GetQuotes()...)
	return quote, storage.Write(r.store, "quotes.json", quotes)
}

// Clients

func (r *LeadsRepository) GetClients() []entities.Client {
	return storage.Read(r.store, "clients.json", []entities.Client{})
}

func (r *LeadsRepository) AddClient(client entities.Client) (entities.Client, error) {
	client.ID = NewID()
	client.Timestamp = NowISO()
	clients := append([]entities.Client{client}, r.GetClients()...)
	return client, storage.Write(r.store, "clients.json", clients)
}

func (r *LeadsRepository) UpdateClient(id string, patch map[string]interface{}) (bool, error) {
	clients := r.GetClients()
	i := indexOf(clients, id)
	if i < 0 {
		return false, nil
	}
	merged, err := mergeRecord(clients[i], patch)
	if err != nil {
		return false, err
	}
	clients[i] = merged
	return true, storage.Write(r.store, "clients.json", clients)
}

func (r *LeadsRepository) DeleteClient(id string) (bool, error) {
	clients, removed := removeByID(r.GetClients(), id)
	if !removed {
		return false, nil
	}
	return true, storage.Write(r.store, "clients.json", clients)
}
