// Copyright (c) 2025, Confscope Authors.  All rights reserved.
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

package nginx

// knownDirectives is the fixed registry consulted in strict mode. It covers
// the core, events, http, server, location, and upstream contexts' common
// directives. Unknown names pass through unchanged unless strict mode is on.
var knownDirectives = map[string]struct{}{
	// core / main context
	"daemon":                  {},
	"env":                     {},
	"error_log":               {},
	"events":                  {},
	"http":                    {},
	"include":                 {},
	"load_module":             {},
	"master_process":          {},
	"pcre_jit":                {},
	"pid":                     {},
	"user":                    {},
	"worker_cpu_affinity":     {},
	"worker_priority":         {},
	"worker_processes":        {},
	"worker_rlimit_core":      {},
	"worker_rlimit_nofile":    {},
	"worker_shutdown_timeout": {},
	"working_directory":       {},

	// events context
	"accept_mutex":        {},
	"accept_mutex_delay":  {},
	"multi_accept":        {},
	"use":                 {},
	"worker_aio_requests": {},
	"worker_connections":  {},

	// http / server / location
	"absolute_redirect":             {},
	"access_log":                    {},
	"add_header":                    {},
	"alias":                         {},
	"auth_basic":                    {},
	"auth_basic_user_file":          {},
	"autoindex":                     {},
	"break":                         {},
	"charset":                       {},
	"client_body_buffer_size":       {},
	"client_body_timeout":           {},
	"client_header_buffer_size":     {},
	"client_header_timeout":         {},
	"client_max_body_size":          {},
	"default_type":                  {},
	"deny":                          {},
	"allow":                         {},
	"error_page":                    {},
	"etag":                          {},
	"expires":                       {},
	"fastcgi_index":                 {},
	"fastcgi_param":                 {},
	"fastcgi_pass":                  {},
	"fastcgi_read_timeout":          {},
	"fastcgi_split_path_info":       {},
	"geo":                           {},
	"gzip":                          {},
	"gzip_comp_level":               {},
	"gzip_disable":                  {},
	"gzip_min_length":               {},
	"gzip_proxied":                  {},
	"gzip_types":                    {},
	"gzip_vary":                     {},
	"if":                            {},
	"index":                         {},
	"internal":                      {},
	"keepalive":                     {},
	"keepalive_requests":            {},
	"keepalive_timeout":             {},
	"large_client_header_buffers":   {},
	"limit_conn":                    {},
	"limit_conn_zone":               {},
	"limit_except":                  {},
	"limit_rate":                    {},
	"limit_req":                     {},
	"limit_req_zone":                {},
	"listen":                        {},
	"location":                      {},
	"log_format":                    {},
	"log_not_found":                 {},
	"map":                           {},
	"merge_slashes":                 {},
	"open_file_cache":               {},
	"open_file_cache_errors":        {},
	"open_file_cache_min_uses":      {},
	"open_file_cache_valid":         {},
	"proxy_buffer_size":             {},
	"proxy_buffering":               {},
	"proxy_buffers":                 {},
	"proxy_cache":                   {},
	"proxy_cache_path":              {},
	"proxy_cache_valid":             {},
	"proxy_connect_timeout":         {},
	"proxy_http_version":            {},
	"proxy_pass":                    {},
	"proxy_read_timeout":            {},
	"proxy_redirect":                {},
	"proxy_send_timeout":            {},
	"proxy_set_header":              {},
	"proxy_ssl_verify":              {},
	"real_ip_header":                {},
	"resolver":                      {},
	"resolver_timeout":              {},
	"return":                        {},
	"rewrite":                       {},
	"root":                          {},
	"satisfy":                       {},
	"sendfile":                      {},
	"server":                        {},
	"server_name":                   {},
	"server_names_hash_bucket_size": {},
	"server_tokens":                 {},
	"set":                           {},
	"set_real_ip_from":              {},
	"ssl_certificate":               {},
	"ssl_certificate_key":           {},
	"ssl_ciphers":                   {},
	"ssl_dhparam":                   {},
	"ssl_password_file":             {},
	"ssl_prefer_server_ciphers":     {},
	"ssl_protocols":                 {},
	"ssl_session_cache":             {},
	"ssl_session_tickets":           {},
	"ssl_session_timeout":           {},
	"ssl_stapling":                  {},
	"ssl_stapling_verify":           {},
	"ssl_trusted_certificate":       {},
	"tcp_nodelay":                   {},
	"tcp_nopush":                    {},
	"try_files":                     {},
	"types":                         {},
	"types_hash_bucket_size":        {},
	"types_hash_max_size":           {},
	"underscores_in_headers":        {},
	"upstream":                      {},
	"uwsgi_pass":                    {},
	"valid_referers":                {},
	"variables_hash_max_size":       {},
}

// KnownDirective reports whether name is in the strict-mode registry.
func KnownDirective(name string) bool {
	_, ok := knownDirectives[name]
	return ok
}
