package config

import (
	"fmt"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
	"github.com/qdm12/smsglobal/internal/smsglobal"
)

type Config struct {
	Client    Client
	SMSGlobal smsglobal.Settings
	Server    Server
	Logger    Logger
	Shoutrrr  Shoutrrr
}

func (c *Config) SetDefaults() {
	c.Client.setDefaults()
	c.SMSGlobal.SetDefaults()
	c.Server.SetDefaults()
	c.Logger.setDefaults()
	c.Shoutrrr.setDefaults()
}

func (c Config) Validate() (err error) {
	type validator interface {
		Validate() (err error)
	}
	toValidate := map[string]validator{
		"client":    &c.Client,
		"smsglobal": &c.SMSGlobal,
		"server":    &c.Server,
		"logger":    &c.Logger,
		"shoutrrr":  &c.Shoutrrr,
	}

	for name, v := range toValidate {
		err = v.Validate()
		if err != nil {
			return fmt.Errorf("%s settings: %w", name, err)
		}
	}

	return nil
}

func (c Config) String() string {
	return c.toLinesNode().String()
}

func (c Config) toLinesNode() *gotree.Node {
	node := gotree.New("Settings summary:")
	node.AppendNode(c.Client.toLinesNode())
	node.AppendNode(c.SMSGlobal.ToLinesNode())
	node.AppendNode(c.Server.toLinesNode())
	node.AppendNode(c.Logger.toLinesNode())
	node.AppendNode(c.Shoutrrr.ToLinesNode())
	return node
}

func (c *Config) Read(reader *reader.Reader, warner Warner) (err error) {
	err = c.Client.read(reader)
	if err != nil {
		return fmt.Errorf("reading client settings: %w", err)
	}

	c.SMSGlobal = readSMSGlobal(reader)

	err = c.Server.Read(reader, warner)
	if err != nil {
		return fmt.Errorf("reading server settings: %w", err)
	}

	err = c.Logger.read(reader)
	if err != nil {
		return fmt.Errorf("reading logger settings: %w", err)
	}

	c.Shoutrrr.read(reader)

	return nil
}
