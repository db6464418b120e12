package control

import (
	"fmt"
	"os"
	"path/filepath"
)

// ExtractIsoSurface extracts the iso surface at the configured iso value
// from the loaded volume
func (c *Controller) ExtractIsoSurface() error {
	if err := c.engine.ExtractIsoSurface(c.cfg.IsoValue); err != nil {
		err = fmt.Errorf("failed to extract iso surface: %w", err)
		c.view.ShowStatus(err.Error())
		return err
	}
	c.log.Info().Float64("isovalue", c.cfg.IsoValue).Msg("iso surface extracted")
	return nil
}

// ClearIsoSurface removes the extracted iso surface
func (c *Controller) ClearIsoSurface() {
	c.engine.ClearIsoSurface()
	c.view.Repaint()
}

// Grab saves the window contents to a time-stamped PNG file in the grab
// directory and returns its path
func (c *Controller) Grab() (string, error) {
	name := fmt.Sprintf("govox-%s.png", c.now().Format("20060102-150405"))
	path := filepath.Join(c.cfg.GrabDir, name)
	err := os.MkdirAll(c.cfg.GrabDir, 0o755)
	if err == nil {
		err = c.view.Grab(path)
	}
	if err != nil {
		err = fmt.Errorf("failed to grab window: %w", err)
		c.view.ShowStatus(err.Error())
		return "", err
	}
	c.view.ShowStatus("saved " + path)
	c.log.Info().Str("path", path).Msg("window grabbed")
	return path, nil
}
