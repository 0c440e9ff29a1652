package internal

const DefaultSlots = 50

type Option = func(*Config)

type Config struct {
	Slots int
}

func WithSlots(slots int) Option {
	if slots < 2 {
		panic("slots can't be < 2")
	}
	return func(c *Config) {
		c.Slots = slots
	}
}

func WithCapacity(capacity int) Option {
	if capacity < 1 {
		panic("capacity can't be < 1")
	}
	return func(c *Config) {
		c.Slots = capacity + 1
	}
}

func NewConfig(options ...Option) *Config {
	options = append([]Option{
		WithSlots(DefaultSlots),
	}, options...)

	cfg := Config{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	return &cfg
}
