// Package loader wires optional HTTP features into the server.
//
// A feature (runs, products, integrity) owns its service, handler and routes.
// The start command registers them on a Manager, then calls LoadAll once the
// shared middleware is installed:
//
//	mgr := loader.NewManager()
//	mgr.Register(runs.NewFeature(svc))
//	loaded, err := mgr.LoadAll(app)
//
// Features are loaded in registration order. A disabled feature is skipped
// without error; the first failing Load stops the sequence and is returned
// wrapped with the feature's name.
package loader
