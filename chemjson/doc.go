/*
 * doc.go, part of molmod.
 *
 * Copyright 2024 The molmod authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

//Package chemjson implements the serialization of molmod results.
//Its planned use is the communication of molmod programs with other,
//independent programs, which can be written in languages other than Go,
//as long as those languages can read JSON. The results of a parsing
//pass are turned into an Info, which is sent as one JSON document.
package chemjson
