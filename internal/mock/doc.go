/* Copyright 2026 Freerware
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package mock

//go:generate mockgen -destination=code_store.go -package=mock -mock_names=CodeStore=CodeStore github.com/freerware/voucher CodeStore
//go:generate mockgen -destination=event_registry.go -package=mock -mock_names=EventRegistry=EventRegistry github.com/freerware/voucher EventRegistry
