// Copyright © 2025 Trustless Agents Contributors
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package rpc is a minimal Ethereum JSON-RPC client used to sanity
// check an endpoint before handing it to forge.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

var requestTimeout = 10 * time.Second

type Client struct {
	rpcURL string
}

type JSONRPCRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      int           `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type JSONRPCResponse struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      int           `json:"id"`
	Error   *JSONRPCError `json:"error,omitempty"`
	Result  interface{}   `json:"result,omitempty"`
}

type JSONRPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewClient(rpcURL string) *Client {
	return &Client{
		rpcURL: rpcURL,
	}
}

// ChainID calls eth_chainId and decodes the hex quantity the node
// returns.
func (c *Client) ChainID(ctx context.Context) (int64, error) {
	rpcResponse, err := c.call(ctx, "eth_chainId")
	if err != nil {
		return 0, err
	}
	hexID, ok := rpcResponse.Result.(string)
	if !ok {
		return 0, fmt.Errorf("unexpected eth_chainId result from '%s': %v", c.rpcURL, rpcResponse.Result)
	}
	chainID, err := strconv.ParseInt(strings.TrimPrefix(hexID, "0x"), 16, 64)
	if err != nil {
		return 0, fmt.Errorf("unexpected eth_chainId result from '%s': %s", c.rpcURL, hexID)
	}
	return chainID, nil
}

func (c *Client) call(ctx context.Context, method string, params ...interface{}) (*JSONRPCResponse, error) {
	if params == nil {
		params = []interface{}{}
	}
	requestBody, err := json.Marshal(&JSONRPCRequest{
		JSONRPC: "2.0",
		ID:      0,
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, "POST", c.rpcURL, bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	client := &http.Client{Timeout: requestTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("%s [%d] %s", req.URL, resp.StatusCode, responseBody)
	}
	var rpcResponse *JSONRPCResponse
	err = json.Unmarshal(responseBody, &rpcResponse)
	if err != nil {
		return nil, err
	}
	if rpcResponse.Error != nil {
		return nil, fmt.Errorf("%s", rpcResponse.Error.Message)
	}
	return rpcResponse, nil
}
