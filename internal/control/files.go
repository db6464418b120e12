package control

import (
	"errors"
	"path/filepath"

	"github.com/philipparndt/govox/pkg/drop"
)

// Open loads files picked in an open dialog. An empty selection does nothing.
func (c *Controller) Open(files []string) error {
	dec, err := c.dropper.Open(files)
	return c.afterLoad(dec, err)
}

// Drop loads a drag and drop payload of URLs. Only file:// URLs count.
func (c *Controller) Drop(urls []string) error {
	dec, err := c.dropper.Drop(urls)
	return c.afterLoad(dec, err)
}

// Reload loads the last successfully loaded payload again
func (c *Controller) Reload() error {
	if len(c.lastLoad.Paths) == 0 {
		return nil
	}
	c.log.Info().Strs("paths", c.lastLoad.Paths).Msg("reloading")
	return c.afterLoad(c.lastLoad, c.dropper.Load(c.lastLoad))
}

// Loaded returns the last successfully loaded payload
func (c *Controller) Loaded() drop.Decision {
	return c.lastLoad
}

func (c *Controller) afterLoad(dec drop.Decision, err error) error {
	if errors.Is(err, drop.ErrEmptyPayload) {
		return nil
	}
	if err != nil {
		c.view.ShowStatus(err.Error())
		return err
	}

	c.lastLoad = dec
	c.view.SetLabel(Label(dec))
	if c.onLoaded != nil {
		c.onLoaded(dec.Paths)
	}
	return nil
}

// Label names a loaded payload: the file name, or for a series the
// prefix shared by all slices.
func Label(dec drop.Decision) string {
	if len(dec.Paths) == 0 {
		return ""
	}
	if dec.Kind == drop.Series {
		if prefix := drop.CommonPrefix(dec.Paths); prefix != "" {
			return prefix
		}
		return "series"
	}
	return filepath.Base(dec.Paths[0])
}

// Unload removes the loaded volume and surface. The placeholder is not
// shown again and auto-reload stops following the old files.
func (c *Controller) Unload() {
	c.engine.ClearVolume()
	c.engine.ClearSurface()
	c.lastLoad = drop.Decision{}
	c.view.SetLabel("")
	c.view.Repaint()
	c.log.Info().Msg("data unloaded")
}
