// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/talkwheel/talkwheel/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/talkwheel/talkwheel/ent/conversation"
	"github.com/talkwheel/talkwheel/ent/conversationround"
	"github.com/talkwheel/talkwheel/ent/conversationrun"
	"github.com/talkwheel/talkwheel/ent/event"
	"github.com/talkwheel/talkwheel/ent/message"
	"github.com/talkwheel/talkwheel/ent/messageswipe"
	"github.com/talkwheel/talkwheel/ent/roundparticipant"
	"github.com/talkwheel/talkwheel/ent/space"
	"github.com/talkwheel/talkwheel/ent/spacemembership"
	"github.com/talkwheel/talkwheel/ent/textcontent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Conversation is the client for interacting with the Conversation builders.
	Conversation *ConversationClient
	// ConversationRound is the client for interacting with the ConversationRound builders.
	ConversationRound *ConversationRoundClient
	// ConversationRun is the client for interacting with the ConversationRun builders.
	ConversationRun *ConversationRunClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// Message is the client for interacting with the Message builders.
	Message *MessageClient
	// MessageSwipe is the client for interacting with the MessageSwipe builders.
	MessageSwipe *MessageSwipeClient
	// RoundParticipant is the client for interacting with the RoundParticipant builders.
	RoundParticipant *RoundParticipantClient
	// Space is the client for interacting with the Space builders.
	Space *SpaceClient
	// SpaceMembership is the client for interacting with the SpaceMembership builders.
	SpaceMembership *SpaceMembershipClient
	// TextContent is the client for interacting with the TextContent builders.
	TextContent *TextContentClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Conversation = NewConversationClient(c.config)
	c.ConversationRound = NewConversationRoundClient(c.config)
	c.ConversationRun = NewConversationRunClient(c.config)
	c.Event = NewEventClient(c.config)
	c.Message = NewMessageClient(c.config)
	c.MessageSwipe = NewMessageSwipeClient(c.config)
	c.RoundParticipant = NewRoundParticipantClient(c.config)
	c.Space = NewSpaceClient(c.config)
	c.SpaceMembership = NewSpaceMembershipClient(c.config)
	c.TextContent = NewTextContentClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		Conversation:      NewConversationClient(cfg),
		ConversationRound: NewConversationRoundClient(cfg),
		ConversationRun:   NewConversationRunClient(cfg),
		Event:             NewEventClient(cfg),
		Message:           NewMessageClient(cfg),
		MessageSwipe:      NewMessageSwipeClient(cfg),
		RoundParticipant:  NewRoundParticipantClient(cfg),
		Space:             NewSpaceClient(cfg),
		SpaceMembership:   NewSpaceMembershipClient(cfg),
		TextContent:       NewTextContentClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		Conversation:      NewConversationClient(cfg),
		ConversationRound: NewConversationRoundClient(cfg),
		ConversationRun:   NewConversationRunClient(cfg),
		Event:             NewEventClient(cfg),
		Message:           NewMessageClient(cfg),
		MessageSwipe:      NewMessageSwipeClient(cfg),
		RoundParticipant:  NewRoundParticipantClient(cfg),
		Space:             NewSpaceClient(cfg),
		SpaceMembership:   NewSpaceMembershipClient(cfg),
		TextContent:       NewTextContentClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Conversation.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Conversation, c.ConversationRound, c.ConversationRun, c.Event, c.Message,
		c.MessageSwipe, c.RoundParticipant, c.Space, c.SpaceMembership, c.TextContent,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Conversation, c.ConversationRound, c.ConversationRun, c.Event, c.Message,
		c.MessageSwipe, c.RoundParticipant, c.Space, c.SpaceMembership, c.TextContent,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ConversationMutation:
		return c.Conversation.mutate(ctx, m)
	case *ConversationRoundMutation:
		return c.ConversationRound.mutate(ctx, m)
	case *ConversationRunMutation:
		return c.ConversationRun.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *MessageMutation:
		return c.Message.mutate(ctx, m)
	case *MessageSwipeMutation:
		return c.MessageSwipe.mutate(ctx, m)
	case *RoundParticipantMutation:
		return c.RoundParticipant.mutate(ctx, m)
	case *SpaceMutation:
		return c.Space.mutate(ctx, m)
	case *SpaceMembershipMutation:
		return c.SpaceMembership.mutate(ctx, m)
	case *TextContentMutation:
		return c.TextContent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ConversationClient is a client for the Conversation schema.
type ConversationClient struct {
	config
}

// NewConversationClient returns a client for the Conversation from the given config.
func NewConversationClient(c config) *ConversationClient {
	return &ConversationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conversation.Hooks(f(g(h())))`.
func (c *ConversationClient) Use(hooks ...Hook) {
	c.hooks.Conversation = append(c.hooks.Conversation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conversation.Intercept(f(g(h())))`.
func (c *ConversationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Conversation = append(c.inters.Conversation, interceptors...)
}

// Create returns a builder for creating a Conversation entity.
func (c *ConversationClient) Create() *ConversationCreate {
	mutation := newConversationMutation(c.config, OpCreate)
	return &ConversationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Conversation entities.
func (c *ConversationClient) CreateBulk(builders ...*ConversationCreate) *ConversationCreateBulk {
	return &ConversationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConversationClient) MapCreateBulk(slice any, setFunc func(*ConversationCreate, int)) *ConversationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConversationCreateBulk{err: fmt.Errorf("calling to ConversationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConversationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConversationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Conversation.
func (c *ConversationClient) Update() *ConversationUpdate {
	mutation := newConversationMutation(c.config, OpUpdate)
	return &ConversationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConversationClient) UpdateOne(_m *Conversation) *ConversationUpdateOne {
	mutation := newConversationMutation(c.config, OpUpdateOne, withConversation(_m))
	return &ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConversationClient) UpdateOneID(id string) *ConversationUpdateOne {
	mutation := newConversationMutation(c.config, OpUpdateOne, withConversationID(id))
	return &ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Conversation.
func (c *ConversationClient) Delete() *ConversationDelete {
	mutation := newConversationMutation(c.config, OpDelete)
	return &ConversationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConversationClient) DeleteOne(_m *Conversation) *ConversationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConversationClient) DeleteOneID(id string) *ConversationDeleteOne {
	builder := c.Delete().Where(conversation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConversationDeleteOne{builder}
}

// Query returns a query builder for Conversation.
func (c *ConversationClient) Query() *ConversationQuery {
	return &ConversationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConversation},
		inters: c.Interceptors(),
	}
}

// Get returns a Conversation entity by its id.
func (c *ConversationClient) Get(ctx context.Context, id string) (*Conversation, error) {
	return c.Query().Where(conversation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConversationClient) GetX(ctx context.Context, id string) *Conversation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySpace queries the space edge of a Conversation.
func (c *ConversationClient) QuerySpace(_m *Conversation) *SpaceQuery {
	query := (&SpaceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conversation.Table, conversation.FieldID, id),
			sqlgraph.To(space.Table, space.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, conversation.SpaceTable, conversation.SpaceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMessages queries the messages edge of a Conversation.
func (c *ConversationClient) QueryMessages(_m *Conversation) *MessageQuery {
	query := (&MessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conversation.Table, conversation.FieldID, id),
			sqlgraph.To(message.Table, message.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, conversation.MessagesTable, conversation.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRuns queries the runs edge of a Conversation.
func (c *ConversationClient) QueryRuns(_m *Conversation) *ConversationRunQuery {
	query := (&ConversationRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conversation.Table, conversation.FieldID, id),
			sqlgraph.To(conversationrun.Table, conversationrun.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, conversation.RunsTable, conversation.RunsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRounds queries the rounds edge of a Conversation.
func (c *ConversationClient) QueryRounds(_m *Conversation) *ConversationRoundQuery {
	query := (&ConversationRoundClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conversation.Table, conversation.FieldID, id),
			sqlgraph.To(conversationround.Table, conversationround.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, conversation.RoundsTable, conversation.RoundsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvents queries the events edge of a Conversation.
func (c *ConversationClient) QueryEvents(_m *Conversation) *EventQuery {
	query := (&EventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conversation.Table, conversation.FieldID, id),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, conversation.EventsTable, conversation.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ConversationClient) Hooks() []Hook {
	return c.hooks.Conversation
}

// Interceptors returns the client interceptors.
func (c *ConversationClient) Interceptors() []Interceptor {
	return c.inters.Conversation
}

func (c *ConversationClient) mutate(ctx context.Context, m *ConversationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConversationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConversationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConversationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Conversation mutation op: %q", m.Op())
	}
}

// ConversationRoundClient is a client for the ConversationRound schema.
type ConversationRoundClient struct {
	config
}

// NewConversationRoundClient returns a client for the ConversationRound from the given config.
func NewConversationRoundClient(c config) *ConversationRoundClient {
	return &ConversationRoundClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conversationround.Hooks(f(g(h())))`.
func (c *ConversationRoundClient) Use(hooks ...Hook) {
	c.hooks.ConversationRound = append(c.hooks.ConversationRound, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conversationround.Intercept(f(g(h())))`.
func (c *ConversationRoundClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConversationRound = append(c.inters.ConversationRound, interceptors...)
}

// Create returns a builder for creating a ConversationRound entity.
func (c *ConversationRoundClient) Create() *ConversationRoundCreate {
	mutation := newConversationRoundMutation(c.config, OpCreate)
	return &ConversationRoundCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConversationRound entities.
func (c *ConversationRoundClient) CreateBulk(builders ...*ConversationRoundCreate) *ConversationRoundCreateBulk {
	return &ConversationRoundCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConversationRoundClient) MapCreateBulk(slice any, setFunc func(*ConversationRoundCreate, int)) *ConversationRoundCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConversationRoundCreateBulk{err: fmt.Errorf("calling to ConversationRoundClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConversationRoundCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConversationRoundCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConversationRound.
func (c *ConversationRoundClient) Update() *ConversationRoundUpdate {
	mutation := newConversationRoundMutation(c.config, OpUpdate)
	return &ConversationRoundUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConversationRoundClient) UpdateOne(_m *ConversationRound) *ConversationRoundUpdateOne {
	mutation := newConversationRoundMutation(c.config, OpUpdateOne, withConversationRound(_m))
	return &ConversationRoundUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConversationRoundClient) UpdateOneID(id string) *ConversationRoundUpdateOne {
	mutation := newConversationRoundMutation(c.config, OpUpdateOne, withConversationRoundID(id))
	return &ConversationRoundUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConversationRound.
func (c *ConversationRoundClient) Delete() *ConversationRoundDelete {
	mutation := newConversationRoundMutation(c.config, OpDelete)
	return &ConversationRoundDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConversationRoundClient) DeleteOne(_m *ConversationRound) *ConversationRoundDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConversationRoundClient) DeleteOneID(id string) *ConversationRoundDeleteOne {
	builder := c.Delete().Where(conversationround.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConversationRoundDeleteOne{builder}
}

// Query returns a query builder for ConversationRound.
func (c *ConversationRoundClient) Query() *ConversationRoundQuery {
	return &ConversationRoundQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConversationRound},
		inters: c.Interceptors(),
	}
}

// Get returns a ConversationRound entity by its id.
func (c *ConversationRoundClient) Get(ctx context.Context, id string) (*ConversationRound, error) {
	return c.Query().Where(conversationround.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConversationRoundClient) GetX(ctx context.Context, id string) *ConversationRound {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryConversation queries the conversation edge of a ConversationRound.
func (c *ConversationRoundClient) QueryConversation(_m *ConversationRound) *ConversationQuery {
	query := (&ConversationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conversationround.Table, conversationround.FieldID, id),
			sqlgraph.To(conversation.Table, conversation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, conversationround.ConversationTable, conversationround.ConversationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryParticipants queries the participants edge of a ConversationRound.
func (c *ConversationRoundClient) QueryParticipants(_m *ConversationRound) *RoundParticipantQuery {
	query := (&RoundParticipantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conversationround.Table, conversationround.FieldID, id),
			sqlgraph.To(roundparticipant.Table, roundparticipant.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, conversationround.ParticipantsTable, conversationround.ParticipantsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ConversationRoundClient) Hooks() []Hook {
	return c.hooks.ConversationRound
}

// Interceptors returns the client interceptors.
func (c *ConversationRoundClient) Interceptors() []Interceptor {
	return c.inters.ConversationRound
}

func (c *ConversationRoundClient) mutate(ctx context.Context, m *ConversationRoundMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConversationRoundCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConversationRoundUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConversationRoundUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConversationRoundDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConversationRound mutation op: %q", m.Op())
	}
}

// ConversationRunClient is a client for the ConversationRun schema.
type ConversationRunClient struct {
	config
}

// NewConversationRunClient returns a client for the ConversationRun from the given config.
func NewConversationRunClient(c config) *ConversationRunClient {
	return &ConversationRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conversationrun.Hooks(f(g(h())))`.
func (c *ConversationRunClient) Use(hooks ...Hook) {
	c.hooks.ConversationRun = append(c.hooks.ConversationRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conversationrun.Intercept(f(g(h())))`.
func (c *ConversationRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConversationRun = append(c.inters.ConversationRun, interceptors...)
}

// Create returns a builder for creating a ConversationRun entity.
func (c *ConversationRunClient) Create() *ConversationRunCreate {
	mutation := newConversationRunMutation(c.config, OpCreate)
	return &ConversationRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConversationRun entities.
func (c *ConversationRunClient) CreateBulk(builders ...*ConversationRunCreate) *ConversationRunCreateBulk {
	return &ConversationRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConversationRunClient) MapCreateBulk(slice any, setFunc func(*ConversationRunCreate, int)) *ConversationRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConversationRunCreateBulk{err: fmt.Errorf("calling to ConversationRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConversationRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConversationRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConversationRun.
func (c *ConversationRunClient) Update() *ConversationRunUpdate {
	mutation := newConversationRunMutation(c.config, OpUpdate)
	return &ConversationRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConversationRunClient) UpdateOne(_m *ConversationRun) *ConversationRunUpdateOne {
	mutation := newConversationRunMutation(c.config, OpUpdateOne, withConversationRun(_m))
	return &ConversationRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConversationRunClient) UpdateOneID(id string) *ConversationRunUpdateOne {
	mutation := newConversationRunMutation(c.config, OpUpdateOne, withConversationRunID(id))
	return &ConversationRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConversationRun.
func (c *ConversationRunClient) Delete() *ConversationRunDelete {
	mutation := newConversationRunMutation(c.config, OpDelete)
	return &ConversationRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConversationRunClient) DeleteOne(_m *ConversationRun) *ConversationRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConversationRunClient) DeleteOneID(id string) *ConversationRunDeleteOne {
	builder := c.Delete().Where(conversationrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConversationRunDeleteOne{builder}
}

// Query returns a query builder for ConversationRun.
func (c *ConversationRunClient) Query() *ConversationRunQuery {
	return &ConversationRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConversationRun},
		inters: c.Interceptors(),
	}
}

// Get returns a ConversationRun entity by its id.
func (c *ConversationRunClient) Get(ctx context.Context, id string) (*ConversationRun, error) {
	return c.Query().Where(conversationrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConversationRunClient) GetX(ctx context.Context, id string) *ConversationRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryConversation queries the conversation edge of a ConversationRun.
func (c *ConversationRunClient) QueryConversation(_m *ConversationRun) *ConversationQuery {
	query := (&ConversationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conversationrun.Table, conversationrun.FieldID, id),
			sqlgraph.To(conversation.Table, conversation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, conversationrun.ConversationTable, conversationrun.ConversationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySpeaker queries the speaker edge of a ConversationRun.
func (c *ConversationRunClient) QuerySpeaker(_m *ConversationRun) *SpaceMembershipQuery {
	query := (&SpaceMembershipClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conversationrun.Table, conversationrun.FieldID, id),
			sqlgraph.To(spacemembership.Table, spacemembership.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, conversationrun.SpeakerTable, conversationrun.SpeakerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ConversationRunClient) Hooks() []Hook {
	return c.hooks.ConversationRun
}

// Interceptors returns the client interceptors.
func (c *ConversationRunClient) Interceptors() []Interceptor {
	return c.inters.ConversationRun
}

func (c *ConversationRunClient) mutate(ctx context.Context, m *ConversationRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConversationRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConversationRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConversationRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConversationRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConversationRun mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryConversation queries the conversation edge of a Event.
func (c *EventClient) QueryConversation(_m *Event) *ConversationQuery {
	query := (&ConversationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(event.Table, event.FieldID, id),
			sqlgraph.To(conversation.Table, conversation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, event.ConversationTable, event.ConversationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// MessageClient is a client for the Message schema.
type MessageClient struct {
	config
}

// NewMessageClient returns a client for the Message from the given config.
func NewMessageClient(c config) *MessageClient {
	return &MessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `message.Hooks(f(g(h())))`.
func (c *MessageClient) Use(hooks ...Hook) {
	c.hooks.Message = append(c.hooks.Message, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `message.Intercept(f(g(h())))`.
func (c *MessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.Message = append(c.inters.Message, interceptors...)
}

// Create returns a builder for creating a Message entity.
func (c *MessageClient) Create() *MessageCreate {
	mutation := newMessageMutation(c.config, OpCreate)
	return &MessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Message entities.
func (c *MessageClient) CreateBulk(builders ...*MessageCreate) *MessageCreateBulk {
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageClient) MapCreateBulk(slice any, setFunc func(*MessageCreate, int)) *MessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageCreateBulk{err: fmt.Errorf("calling to MessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Message.
func (c *MessageClient) Update() *MessageUpdate {
	mutation := newMessageMutation(c.config, OpUpdate)
	return &MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageClient) UpdateOne(_m *Message) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessage(_m))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageClient) UpdateOneID(id string) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessageID(id))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Message.
func (c *MessageClient) Delete() *MessageDelete {
	mutation := newMessageMutation(c.config, OpDelete)
	return &MessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageClient) DeleteOne(_m *Message) *MessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageClient) DeleteOneID(id string) *MessageDeleteOne {
	builder := c.Delete().Where(message.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageDeleteOne{builder}
}

// Query returns a query builder for Message.
func (c *MessageClient) Query() *MessageQuery {
	return &MessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a Message entity by its id.
func (c *MessageClient) Get(ctx context.Context, id string) (*Message, error) {
	return c.Query().Where(message.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageClient) GetX(ctx context.Context, id string) *Message {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryConversation queries the conversation edge of a Message.
func (c *MessageClient) QueryConversation(_m *Message) *ConversationQuery {
	query := (&ConversationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(message.Table, message.FieldID, id),
			sqlgraph.To(conversation.Table, conversation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, message.ConversationTable, message.ConversationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySwipes queries the swipes edge of a Message.
func (c *MessageClient) QuerySwipes(_m *Message) *MessageSwipeQuery {
	query := (&MessageSwipeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(message.Table, message.FieldID, id),
			sqlgraph.To(messageswipe.Table, messageswipe.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, message.SwipesTable, message.SwipesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MessageClient) Hooks() []Hook {
	return c.hooks.Message
}

// Interceptors returns the client interceptors.
func (c *MessageClient) Interceptors() []Interceptor {
	return c.inters.Message
}

func (c *MessageClient) mutate(ctx context.Context, m *MessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Message mutation op: %q", m.Op())
	}
}

// MessageSwipeClient is a client for the MessageSwipe schema.
type MessageSwipeClient struct {
	config
}

// NewMessageSwipeClient returns a client for the MessageSwipe from the given config.
func NewMessageSwipeClient(c config) *MessageSwipeClient {
	return &MessageSwipeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `messageswipe.Hooks(f(g(h())))`.
func (c *MessageSwipeClient) Use(hooks ...Hook) {
	c.hooks.MessageSwipe = append(c.hooks.MessageSwipe, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `messageswipe.Intercept(f(g(h())))`.
func (c *MessageSwipeClient) Intercept(interceptors ...Interceptor) {
	c.inters.MessageSwipe = append(c.inters.MessageSwipe, interceptors...)
}

// Create returns a builder for creating a MessageSwipe entity.
func (c *MessageSwipeClient) Create() *MessageSwipeCreate {
	mutation := newMessageSwipeMutation(c.config, OpCreate)
	return &MessageSwipeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MessageSwipe entities.
func (c *MessageSwipeClient) CreateBulk(builders ...*MessageSwipeCreate) *MessageSwipeCreateBulk {
	return &MessageSwipeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageSwipeClient) MapCreateBulk(slice any, setFunc func(*MessageSwipeCreate, int)) *MessageSwipeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageSwipeCreateBulk{err: fmt.Errorf("calling to MessageSwipeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageSwipeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageSwipeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MessageSwipe.
func (c *MessageSwipeClient) Update() *MessageSwipeUpdate {
	mutation := newMessageSwipeMutation(c.config, OpUpdate)
	return &MessageSwipeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageSwipeClient) UpdateOne(_m *MessageSwipe) *MessageSwipeUpdateOne {
	mutation := newMessageSwipeMutation(c.config, OpUpdateOne, withMessageSwipe(_m))
	return &MessageSwipeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageSwipeClient) UpdateOneID(id string) *MessageSwipeUpdateOne {
	mutation := newMessageSwipeMutation(c.config, OpUpdateOne, withMessageSwipeID(id))
	return &MessageSwipeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MessageSwipe.
func (c *MessageSwipeClient) Delete() *MessageSwipeDelete {
	mutation := newMessageSwipeMutation(c.config, OpDelete)
	return &MessageSwipeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageSwipeClient) DeleteOne(_m *MessageSwipe) *MessageSwipeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageSwipeClient) DeleteOneID(id string) *MessageSwipeDeleteOne {
	builder := c.Delete().Where(messageswipe.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageSwipeDeleteOne{builder}
}

// Query returns a query builder for MessageSwipe.
func (c *MessageSwipeClient) Query() *MessageSwipeQuery {
	return &MessageSwipeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessageSwipe},
		inters: c.Interceptors(),
	}
}

// Get returns a MessageSwipe entity by its id.
func (c *MessageSwipeClient) Get(ctx context.Context, id string) (*MessageSwipe, error) {
	return c.Query().Where(messageswipe.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageSwipeClient) GetX(ctx context.Context, id string) *MessageSwipe {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMessage queries the message edge of a MessageSwipe.
func (c *MessageSwipeClient) QueryMessage(_m *MessageSwipe) *MessageQuery {
	query := (&MessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(messageswipe.Table, messageswipe.FieldID, id),
			sqlgraph.To(message.Table, message.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, messageswipe.MessageTable, messageswipe.MessageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MessageSwipeClient) Hooks() []Hook {
	return c.hooks.MessageSwipe
}

// Interceptors returns the client interceptors.
func (c *MessageSwipeClient) Interceptors() []Interceptor {
	return c.inters.MessageSwipe
}

func (c *MessageSwipeClient) mutate(ctx context.Context, m *MessageSwipeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageSwipeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageSwipeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageSwipeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageSwipeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MessageSwipe mutation op: %q", m.Op())
	}
}

// RoundParticipantClient is a client for the RoundParticipant schema.
type RoundParticipantClient struct {
	config
}

// NewRoundParticipantClient returns a client for the RoundParticipant from the given config.
func NewRoundParticipantClient(c config) *RoundParticipantClient {
	return &RoundParticipantClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `roundparticipant.Hooks(f(g(h())))`.
func (c *RoundParticipantClient) Use(hooks ...Hook) {
	c.hooks.RoundParticipant = append(c.hooks.RoundParticipant, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `roundparticipant.Intercept(f(g(h())))`.
func (c *RoundParticipantClient) Intercept(interceptors ...Interceptor) {
	c.inters.RoundParticipant = append(c.inters.RoundParticipant, interceptors...)
}

// Create returns a builder for creating a RoundParticipant entity.
func (c *RoundParticipantClient) Create() *RoundParticipantCreate {
	mutation := newRoundParticipantMutation(c.config, OpCreate)
	return &RoundParticipantCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RoundParticipant entities.
func (c *RoundParticipantClient) CreateBulk(builders ...*RoundParticipantCreate) *RoundParticipantCreateBulk {
	return &RoundParticipantCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RoundParticipantClient) MapCreateBulk(slice any, setFunc func(*RoundParticipantCreate, int)) *RoundParticipantCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RoundParticipantCreateBulk{err: fmt.Errorf("calling to RoundParticipantClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RoundParticipantCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RoundParticipantCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RoundParticipant.
func (c *RoundParticipantClient) Update() *RoundParticipantUpdate {
	mutation := newRoundParticipantMutation(c.config, OpUpdate)
	return &RoundParticipantUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RoundParticipantClient) UpdateOne(_m *RoundParticipant) *RoundParticipantUpdateOne {
	mutation := newRoundParticipantMutation(c.config, OpUpdateOne, withRoundParticipant(_m))
	return &RoundParticipantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RoundParticipantClient) UpdateOneID(id string) *RoundParticipantUpdateOne {
	mutation := newRoundParticipantMutation(c.config, OpUpdateOne, withRoundParticipantID(id))
	return &RoundParticipantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RoundParticipant.
func (c *RoundParticipantClient) Delete() *RoundParticipantDelete {
	mutation := newRoundParticipantMutation(c.config, OpDelete)
	return &RoundParticipantDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RoundParticipantClient) DeleteOne(_m *RoundParticipant) *RoundParticipantDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RoundParticipantClient) DeleteOneID(id string) *RoundParticipantDeleteOne {
	builder := c.Delete().Where(roundparticipant.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RoundParticipantDeleteOne{builder}
}

// Query returns a query builder for RoundParticipant.
func (c *RoundParticipantClient) Query() *RoundParticipantQuery {
	return &RoundParticipantQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRoundParticipant},
		inters: c.Interceptors(),
	}
}

// Get returns a RoundParticipant entity by its id.
func (c *RoundParticipantClient) Get(ctx context.Context, id string) (*RoundParticipant, error) {
	return c.Query().Where(roundparticipant.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RoundParticipantClient) GetX(ctx context.Context, id string) *RoundParticipant {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRound queries the round edge of a RoundParticipant.
func (c *RoundParticipantClient) QueryRound(_m *RoundParticipant) *ConversationRoundQuery {
	query := (&ConversationRoundClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(roundparticipant.Table, roundparticipant.FieldID, id),
			sqlgraph.To(conversationround.Table, conversationround.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, roundparticipant.RoundTable, roundparticipant.RoundColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RoundParticipantClient) Hooks() []Hook {
	return c.hooks.RoundParticipant
}

// Interceptors returns the client interceptors.
func (c *RoundParticipantClient) Interceptors() []Interceptor {
	return c.inters.RoundParticipant
}

func (c *RoundParticipantClient) mutate(ctx context.Context, m *RoundParticipantMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RoundParticipantCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RoundParticipantUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RoundParticipantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RoundParticipantDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RoundParticipant mutation op: %q", m.Op())
	}
}

// SpaceClient is a client for the Space schema.
type SpaceClient struct {
	config
}

// NewSpaceClient returns a client for the Space from the given config.
func NewSpaceClient(c config) *SpaceClient {
	return &SpaceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `space.Hooks(f(g(h())))`.
func (c *SpaceClient) Use(hooks ...Hook) {
	c.hooks.Space = append(c.hooks.Space, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `space.Intercept(f(g(h())))`.
func (c *SpaceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Space = append(c.inters.Space, interceptors...)
}

// Create returns a builder for creating a Space entity.
func (c *SpaceClient) Create() *SpaceCreate {
	mutation := newSpaceMutation(c.config, OpCreate)
	return &SpaceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Space entities.
func (c *SpaceClient) CreateBulk(builders ...*SpaceCreate) *SpaceCreateBulk {
	return &SpaceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SpaceClient) MapCreateBulk(slice any, setFunc func(*SpaceCreate, int)) *SpaceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SpaceCreateBulk{err: fmt.Errorf("calling to SpaceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SpaceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SpaceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Space.
func (c *SpaceClient) Update() *SpaceUpdate {
	mutation := newSpaceMutation(c.config, OpUpdate)
	return &SpaceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SpaceClient) UpdateOne(_m *Space) *SpaceUpdateOne {
	mutation := newSpaceMutation(c.config, OpUpdateOne, withSpace(_m))
	return &SpaceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SpaceClient) UpdateOneID(id string) *SpaceUpdateOne {
	mutation := newSpaceMutation(c.config, OpUpdateOne, withSpaceID(id))
	return &SpaceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Space.
func (c *SpaceClient) Delete() *SpaceDelete {
	mutation := newSpaceMutation(c.config, OpDelete)
	return &SpaceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SpaceClient) DeleteOne(_m *Space) *SpaceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SpaceClient) DeleteOneID(id string) *SpaceDeleteOne {
	builder := c.Delete().Where(space.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SpaceDeleteOne{builder}
}

// Query returns a query builder for Space.
func (c *SpaceClient) Query() *SpaceQuery {
	return &SpaceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSpace},
		inters: c.Interceptors(),
	}
}

// Get returns a Space entity by its id.
func (c *SpaceClient) Get(ctx context.Context, id string) (*Space, error) {
	return c.Query().Where(space.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SpaceClient) GetX(ctx context.Context, id string) *Space {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMemberships queries the memberships edge of a Space.
func (c *SpaceClient) QueryMemberships(_m *Space) *SpaceMembershipQuery {
	query := (&SpaceMembershipClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(space.Table, space.FieldID, id),
			sqlgraph.To(spacemembership.Table, spacemembership.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, space.MembershipsTable, space.MembershipsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryConversations queries the conversations edge of a Space.
func (c *SpaceClient) QueryConversations(_m *Space) *ConversationQuery {
	query := (&ConversationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(space.Table, space.FieldID, id),
			sqlgraph.To(conversation.Table, conversation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, space.ConversationsTable, space.ConversationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SpaceClient) Hooks() []Hook {
	return c.hooks.Space
}

// Interceptors returns the client interceptors.
func (c *SpaceClient) Interceptors() []Interceptor {
	return c.inters.Space
}

func (c *SpaceClient) mutate(ctx context.Context, m *SpaceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SpaceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SpaceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SpaceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SpaceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Space mutation op: %q", m.Op())
	}
}

// SpaceMembershipClient is a client for the SpaceMembership schema.
type SpaceMembershipClient struct {
	config
}

// NewSpaceMembershipClient returns a client for the SpaceMembership from the given config.
func NewSpaceMembershipClient(c config) *SpaceMembershipClient {
	return &SpaceMembershipClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `spacemembership.Hooks(f(g(h())))`.
func (c *SpaceMembershipClient) Use(hooks ...Hook) {
	c.hooks.SpaceMembership = append(c.hooks.SpaceMembership, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `spacemembership.Intercept(f(g(h())))`.
func (c *SpaceMembershipClient) Intercept(interceptors ...Interceptor) {
	c.inters.SpaceMembership = append(c.inters.SpaceMembership, interceptors...)
}

// Create returns a builder for creating a SpaceMembership entity.
func (c *SpaceMembershipClient) Create() *SpaceMembershipCreate {
	mutation := newSpaceMembershipMutation(c.config, OpCreate)
	return &SpaceMembershipCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SpaceMembership entities.
func (c *SpaceMembershipClient) CreateBulk(builders ...*SpaceMembershipCreate) *SpaceMembershipCreateBulk {
	return &SpaceMembershipCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SpaceMembershipClient) MapCreateBulk(slice any, setFunc func(*SpaceMembershipCreate, int)) *SpaceMembershipCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SpaceMembershipCreateBulk{err: fmt.Errorf("calling to SpaceMembershipClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SpaceMembershipCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SpaceMembershipCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SpaceMembership.
func (c *SpaceMembershipClient) Update() *SpaceMembershipUpdate {
	mutation := newSpaceMembershipMutation(c.config, OpUpdate)
	return &SpaceMembershipUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SpaceMembershipClient) UpdateOne(_m *SpaceMembership) *SpaceMembershipUpdateOne {
	mutation := newSpaceMembershipMutation(c.config, OpUpdateOne, withSpaceMembership(_m))
	return &SpaceMembershipUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SpaceMembershipClient) UpdateOneID(id string) *SpaceMembershipUpdateOne {
	mutation := newSpaceMembershipMutation(c.config, OpUpdateOne, withSpaceMembershipID(id))
	return &SpaceMembershipUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SpaceMembership.
func (c *SpaceMembershipClient) Delete() *SpaceMembershipDelete {
	mutation := newSpaceMembershipMutation(c.config, OpDelete)
	return &SpaceMembershipDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SpaceMembershipClient) DeleteOne(_m *SpaceMembership) *SpaceMembershipDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SpaceMembershipClient) DeleteOneID(id string) *SpaceMembershipDeleteOne {
	builder := c.Delete().Where(spacemembership.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SpaceMembershipDeleteOne{builder}
}

// Query returns a query builder for SpaceMembership.
func (c *SpaceMembershipClient) Query() *SpaceMembershipQuery {
	return &SpaceMembershipQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSpaceMembership},
		inters: c.Interceptors(),
	}
}

// Get returns a SpaceMembership entity by its id.
func (c *SpaceMembershipClient) Get(ctx context.Context, id string) (*SpaceMembership, error) {
	return c.Query().Where(spacemembership.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SpaceMembershipClient) GetX(ctx context.Context, id string) *SpaceMembership {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySpace queries the space edge of a SpaceMembership.
func (c *SpaceMembershipClient) QuerySpace(_m *SpaceMembership) *SpaceQuery {
	query := (&SpaceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(spacemembership.Table, spacemembership.FieldID, id),
			sqlgraph.To(space.Table, space.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, spacemembership.SpaceTable, spacemembership.SpaceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRuns queries the runs edge of a SpaceMembership.
func (c *SpaceMembershipClient) QueryRuns(_m *SpaceMembership) *ConversationRunQuery {
	query := (&ConversationRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(spacemembership.Table, spacemembership.FieldID, id),
			sqlgraph.To(conversationrun.Table, conversationrun.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, spacemembership.RunsTable, spacemembership.RunsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SpaceMembershipClient) Hooks() []Hook {
	return c.hooks.SpaceMembership
}

// Interceptors returns the client interceptors.
func (c *SpaceMembershipClient) Interceptors() []Interceptor {
	return c.inters.SpaceMembership
}

func (c *SpaceMembershipClient) mutate(ctx context.Context, m *SpaceMembershipMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SpaceMembershipCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SpaceMembershipUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SpaceMembershipUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SpaceMembershipDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SpaceMembership mutation op: %q", m.Op())
	}
}

// TextContentClient is a client for the TextContent schema.
type TextContentClient struct {
	config
}

// NewTextContentClient returns a client for the TextContent from the given config.
func NewTextContentClient(c config) *TextContentClient {
	return &TextContentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `textcontent.Hooks(f(g(h())))`.
func (c *TextContentClient) Use(hooks ...Hook) {
	c.hooks.TextContent = append(c.hooks.TextContent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `textcontent.Intercept(f(g(h())))`.
func (c *TextContentClient) Intercept(interceptors ...Interceptor) {
	c.inters.TextContent = append(c.inters.TextContent, interceptors...)
}

// Create returns a builder for creating a TextContent entity.
func (c *TextContentClient) Create() *TextContentCreate {
	mutation := newTextContentMutation(c.config, OpCreate)
	return &TextContentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TextContent entities.
func (c *TextContentClient) CreateBulk(builders ...*TextContentCreate) *TextContentCreateBulk {
	return &TextContentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TextContentClient) MapCreateBulk(slice any, setFunc func(*TextContentCreate, int)) *TextContentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TextContentCreateBulk{err: fmt.Errorf("calling to TextContentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TextContentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TextContentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TextContent.
func (c *TextContentClient) Update() *TextContentUpdate {
	mutation := newTextContentMutation(c.config, OpUpdate)
	return &TextContentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TextContentClient) UpdateOne(_m *TextContent) *TextContentUpdateOne {
	mutation := newTextContentMutation(c.config, OpUpdateOne, withTextContent(_m))
	return &TextContentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TextContentClient) UpdateOneID(id string) *TextContentUpdateOne {
	mutation := newTextContentMutation(c.config, OpUpdateOne, withTextContentID(id))
	return &TextContentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TextContent.
func (c *TextContentClient) Delete() *TextContentDelete {
	mutation := newTextContentMutation(c.config, OpDelete)
	return &TextContentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TextContentClient) DeleteOne(_m *TextContent) *TextContentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TextContentClient) DeleteOneID(id string) *TextContentDeleteOne {
	builder := c.Delete().Where(textcontent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TextContentDeleteOne{builder}
}

// Query returns a query builder for TextContent.
func (c *TextContentClient) Query() *TextContentQuery {
	return &TextContentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTextContent},
		inters: c.Interceptors(),
	}
}

// Get returns a TextContent entity by its id.
func (c *TextContentClient) Get(ctx context.Context, id string) (*TextContent, error) {
	return c.Query().Where(textcontent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TextContentClient) GetX(ctx context.Context, id string) *TextContent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TextContentClient) Hooks() []Hook {
	return c.hooks.TextContent
}

// Interceptors returns the client interceptors.
func (c *TextContentClient) Interceptors() []Interceptor {
	return c.inters.TextContent
}

func (c *TextContentClient) mutate(ctx context.Context, m *TextContentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TextContentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TextContentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TextContentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TextContentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TextContent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Conversation, ConversationRound, ConversationRun, Event, Message, MessageSwipe,
		RoundParticipant, Space, SpaceMembership, TextContent []ent.Hook
	}
	inters struct {
		Conversation, ConversationRound, ConversationRun, Event, Message, MessageSwipe,
		RoundParticipant, Space, SpaceMembership, TextContent []ent.Interceptor
	}
)
