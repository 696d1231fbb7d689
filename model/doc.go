// Copyright 2023 - 2025, TheFunny and the async-pixiv contributors
// SPDX-License-Identifier: MIT

/*
Package model contains the schema types for pixiv App API JSON responses.

Types mirror the vendor's JSON verbatim; derived accessors (adult-content
checks, resolution fallback chains, web links) live alongside the records
they describe. Fields the API encodes inconsistently (a parent comment that
is sometimes an empty object, dates in a fixed offset) carry custom
unmarshaling so callers only ever see well-formed Go values.
*/
package model
