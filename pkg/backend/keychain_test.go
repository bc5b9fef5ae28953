// Copyright 2026 Secure Config Tool. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package backend_test

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/secure-config-tool/secconf/pkg/backend"
	"github.com/secure-config-tool/secconf/pkg/errors"
)

// fakeTool is an in-memory stand-in for the security tool.
type fakeTool struct {
	findResult string
	findErr    error
	addErr     error
	resetErr   error
	deleteErr  error
	dump       string
	dumpErr    error

	calls []string
}

func (f *fakeTool) FindPassword(ctx context.Context, account, service string) (string, error) {
	f.calls = append(f.calls, "find "+account+" "+service)
	return f.findResult, f.findErr
}

func (f *fakeTool) AddPassword(ctx context.Context, account, service, password string) error {
	f.calls = append(f.calls, "add "+account+" "+service+" "+password)
	return f.addErr
}

func (f *fakeTool) ResetPartitionList(ctx context.Context, account, service string) error {
	f.calls = append(f.calls, "reset "+account+" "+service)
	return f.resetErr
}

func (f *fakeTool) DeletePassword(ctx context.Context, account, service string) error {
	f.calls = append(f.calls, "delete "+account+" "+service)
	return f.deleteErr
}

func (f *fakeTool) Probe(ctx context.Context, account string) {
	f.calls = append(f.calls, "probe "+account)
}

func (f *fakeTool) DumpAll(ctx context.Context) (string, error) {
	f.calls = append(f.calls, "dump")
	return f.dump, f.dumpErr
}

func encode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func TestKeychainStoreEncodesTagsAndResecures(t *testing.T) {
	tool := &fakeTool{}
	kc := backend.NewKeychain(backend.WithTool(tool))

	loc := backend.Locator{Account: "alice", Service: "database"}
	payload := map[string]any{"host": "db.internal"}
	if err := kc.Store(context.Background(), loc, payload); err != nil {
		t.Fatalf("Store() error = %v", err)
	}

	want := []string{
		"add alice SC-database " + encode(`{"host":"db.internal"}`),
		"reset alice SC-database",
	}
	if !reflect.DeepEqual(tool.calls, want) {
		t.Errorf("calls = %q, want %q", tool.calls, want)
	}
}

func TestKeychainStoreUnrepresentablePayload(t *testing.T) {
	tool := &fakeTool{}
	kc := backend.NewKeychain(backend.WithTool(tool))

	err := kc.Store(context.Background(), backend.Locator{Account: "alice", Service: "db"}, make(chan int))
	if !errors.IsKind(err, errors.KindEncoding) {
		t.Fatalf("Store() error = %v, want encoding kind", err)
	}
	if len(tool.calls) != 0 {
		t.Errorf("tool was invoked for an unencodable payload: %q", tool.calls)
	}
}

func TestKeychainStoreAddFailureSkipsReset(t *testing.T) {
	tool := &fakeTool{addErr: errors.WriteError("failed to store secret", nil)}
	kc := backend.NewKeychain(backend.WithTool(tool))

	err := kc.Store(context.Background(), backend.Locator{Account: "alice", Service: "db"}, map[string]any{"k": "v"})
	if !errors.IsKind(err, errors.KindWrite) {
		t.Fatalf("Store() error = %v, want write kind", err)
	}
	for _, call := range tool.calls {
		if call == "reset alice SC-db" {
			t.Error("partition list reset ran after a failed add")
		}
	}
}

func TestKeychainStoreResetFailure(t *testing.T) {
	tool := &fakeTool{resetErr: errors.WriteError("failed to reset partition list", nil)}
	kc := backend.NewKeychain(backend.WithTool(tool))

	err := kc.Store(context.Background(), backend.Locator{Account: "alice", Service: "db"}, map[string]any{"k": "v"})
	if !errors.IsKind(err, errors.KindWrite) {
		t.Fatalf("Store() error = %v, want write kind", err)
	}
}

func TestKeychainLoadDecodesTransport(t *testing.T) {
	tool := &fakeTool{findResult: encode(`{"host":"db.internal","port":5432}`)}
	kc := backend.NewKeychain(backend.WithTool(tool))

	payload, err := kc.Load(context.Background(), backend.Locator{Account: "alice", Service: "database"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	obj, ok := payload.(map[string]any)
	if !ok {
		t.Fatalf("payload is %T, want map", payload)
	}
	if obj["host"] != "db.internal" {
		t.Errorf("host = %v, want db.internal", obj["host"])
	}
	if got := tool.calls[0]; got != "find alice SC-database" {
		t.Errorf("lookup call = %q, want tagged service", got)
	}
}

func TestKeychainLoadPropagatesNotFound(t *testing.T) {
	tool := &fakeTool{findErr: errors.NotFoundError("secret not found", nil)}
	kc := backend.NewKeychain(backend.WithTool(tool))

	_, err := kc.Load(context.Background(), backend.Locator{Account: "alice", Service: "db"})
	if !errors.IsKind(err, errors.KindNotFound) {
		t.Fatalf("Load() error = %v, want not-found kind", err)
	}
}

func TestKeychainLoadRejectsCorruptTransport(t *testing.T) {
	tool := &fakeTool{findResult: "%%% not base64 %%%"}
	kc := backend.NewKeychain(backend.WithTool(tool))

	_, err := kc.Load(context.Background(), backend.Locator{Account: "alice", Service: "db"})
	if !errors.IsKind(err, errors.KindDecoding) {
		t.Fatalf("Load() error = %v, want decoding kind", err)
	}
}

func TestKeychainLoadMirrorsPlaintext(t *testing.T) {
	raw := `{"host":"db.internal"}`
	tool := &fakeTool{findResult: encode(raw)}
	mirror := filepath.Join(t.TempDir(), "config.json")
	kc := backend.NewKeychain(backend.WithTool(tool), backend.WithMirror(mirror))

	if _, err := kc.Load(context.Background(), backend.Locator{Account: "alice", Service: "db"}); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	data, err := os.ReadFile(mirror)
	if err != nil {
		t.Fatalf("reading mirror: %v", err)
	}
	if string(data) != raw {
		t.Errorf("mirror content = %q, want %q", data, raw)
	}

	info, err := os.Stat(mirror)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("mirror mode = %v, want 0600", perm)
	}
}

func TestKeychainMirrorWrittenEvenWhenParseFails(t *testing.T) {
	tool := &fakeTool{findResult: encode("not json at all")}
	mirror := filepath.Join(t.TempDir(), "config.json")
	kc := backend.NewKeychain(backend.WithTool(tool), backend.WithMirror(mirror))

	_, err := kc.Load(context.Background(), backend.Locator{Account: "alice", Service: "db"})
	if !errors.IsKind(err, errors.KindDecoding) {
		t.Fatalf("Load() error = %v, want decoding kind", err)
	}

	data, readErr := os.ReadFile(mirror)
	if readErr != nil {
		t.Fatalf("mirror should exist even when parsing fails: %v", readErr)
	}
	if string(data) != "not json at all" {
		t.Errorf("mirror content = %q, want the stored text", data)
	}
}

func TestKeychainDeleteUsesTaggedService(t *testing.T) {
	tool := &fakeTool{}
	kc := backend.NewKeychain(backend.WithTool(tool))

	if err := kc.Delete(context.Background(), backend.Locator{Account: "alice", Service: "database"}); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	want := []string{"delete alice SC-database"}
	if !reflect.DeepEqual(tool.calls, want) {
		t.Errorf("calls = %q, want %q", tool.calls, want)
	}
}

func TestKeychainListProbesThenDumps(t *testing.T) {
	tool := &fakeTool{dump: keychainDump(
		entry("SC-database", "alice"),
		entry("com.apple.network.eap", "system"),
		entry("SC-api", "bob"),
	)}
	kc := backend.NewKeychain(backend.WithTool(tool))

	records, err := kc.ListEntries(context.Background(), "alice")
	if err != nil {
		t.Fatalf("ListEntries() error = %v", err)
	}

	want := []backend.Record{
		{Service: "database", Account: "alice"},
		{Service: "api", Account: "bob"},
	}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("records = %+v, want %+v", records, want)
	}

	wantCalls := []string{"probe alice", "dump"}
	if !reflect.DeepEqual(tool.calls, wantCalls) {
		t.Errorf("calls = %q, want probe before dump", tool.calls)
	}
}

func TestKeychainListDumpFailure(t *testing.T) {
	tool := &fakeTool{dumpErr: errors.AccessDeniedError("failed to dump keychain", nil)}
	kc := backend.NewKeychain(backend.WithTool(tool))

	_, err := kc.ListEntries(context.Background(), "alice")
	if !errors.IsKind(err, errors.KindAccessDenied) {
		t.Fatalf("ListEntries() error = %v, want access-denied kind", err)
	}
}

func TestKeychainTagsUnconditionally(t *testing.T) {
	tool := &fakeTool{}
	kc := backend.NewKeychain(backend.WithTool(tool))

	// A logical name that already looks tagged still gets the prefix;
	// stripping on list undoes exactly one layer.
	if err := kc.Delete(context.Background(), backend.Locator{Account: "alice", Service: "SC-db"}); err != nil {
		t.Fatal(err)
	}
	if got := tool.calls[0]; got != "delete alice SC-SC-db" {
		t.Errorf("call = %q, want double-tagged service", got)
	}
}

func TestKeychainCapabilities(t *testing.T) {
	kc := backend.NewKeychain(backend.WithTool(&fakeTool{}))
	for _, op := range []backend.Operation{backend.OpLoad, backend.OpStore, backend.OpDelete, backend.OpList} {
		if !backend.Supports(kc, op) {
			t.Errorf("keychain variant should support %s", op)
		}
	}
	if kc.Name() != "keychain" {
		t.Errorf("Name() = %q, want keychain", kc.Name())
	}
}

// keychainDump assembles a plausible dump-keychain transcript.
func keychainDump(entries ...string) string {
	out := "keychain: \"/Users/alice/Library/Keychains/login.keychain-db\"\n"
	for _, e := range entries {
		out += e
	}
	return out
}

func entry(service, account string) string {
	return "version: 512\n" +
		"class: \"genp\"\n" +
		"attributes:\n" +
		"    0x00000007 <blob>=\"" + service + "\"\n" +
		"    \"acct\"<blob>=\"" + account + "\"\n" +
		"    \"cdat\"<timedate>=0x32303236303831395A00  \"20260819Z\\000\"\n" +
		"    \"svce\"<blob>=\"" + service + "\"\n"
}
