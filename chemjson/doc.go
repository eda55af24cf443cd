/*
 * doc.go, part of chemedu.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}usachDOTcl>
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
 * chemedu is developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

//Package chemjson allows programs that are not written in Go (a web page
//or a quiz application, for instance) to use chemedu. Requests and responses
//are JSON objects, one per line, so the communication can happen through
//UNIX pipes, a socket or files. Files can be zstd or gzip compressed.
//
//Each request gets exactly one response. Errors in a request (an unknown
//ion, a negative mass) are sent back in the response, and the following
//requests are still processed.
package chemjson
